package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/calendar"
	"github.com/sirashofficial/learnership-management-sub004/internal/curriculum"
	"github.com/sirashofficial/learnership-management-sub004/internal/db"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
	"github.com/sirashofficial/learnership-management-sub004/internal/repository"
)

type templateService struct {
	templates repository.TemplateRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewTemplateService(templates repository.TemplateRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TemplateService {
	return &templateService{
		templates: templates,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *templateService) Import(ctx context.Context, t *domain.ScheduleTemplate) (err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "import-template", startedAt, err, fields, nil) }()

	if t == nil || t.ID == "" {
		return domain.NewValidationError("id", "template id is required")
	}
	fields["template_id"] = t.ID
	if err = t.Validate(); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteTemplateRepo(tx).Upsert(ctx, t)
	})
}

func (s *templateService) ImportFile(ctx context.Context, path string) (*domain.ScheduleTemplate, error) {
	t, err := curriculum.LoadTemplate(path)
	if err != nil {
		return nil, err
	}
	if err := s.Import(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *templateService) List(ctx context.Context) ([]*domain.ScheduleTemplate, error) {
	return s.templates.List(ctx)
}

func (s *templateService) Assign(ctx context.Context, gs *domain.GroupSchedule) error {
	if gs.GroupID == "" {
		return domain.NewValidationError("group_id", "group id is required")
	}
	if gs.TemplateID == "" {
		return domain.NewValidationError("template_id", "template id is required")
	}
	if gs.StartDate.IsZero() {
		return domain.NewValidationError("start_date", "start date is required")
	}
	gs.StartDate = calendar.Day(gs.StartDate)
	if gs.EndDate != nil {
		end := calendar.Day(*gs.EndDate)
		if end.Before(gs.StartDate) {
			return domain.NewValidationError("end_date", fmt.Sprintf("end date %s is before start date %s",
				end.Format(domain.DateLayout), gs.StartDate.Format(domain.DateLayout)))
		}
		gs.EndDate = &end
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteGroupRepo(tx).GetByID(ctx, gs.GroupID); err != nil {
			return err
		}
		if _, err := repository.NewSQLiteTemplateRepo(tx).GetByID(ctx, gs.TemplateID); err != nil {
			return err
		}
		return repository.NewSQLiteGroupScheduleRepo(tx).Upsert(ctx, gs)
	})
}
