package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/app"
	"github.com/sirashofficial/learnership-management-sub004/internal/calendar"
	"github.com/sirashofficial/learnership-management-sub004/internal/db"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
	"github.com/sirashofficial/learnership-management-sub004/internal/repository"
	"github.com/sirashofficial/learnership-management-sub004/internal/scheduler"
)

type rolloutService struct {
	groups    repository.GroupRepo
	plans     repository.PlanRepo
	curricula repository.CurriculumSource
	uow       db.UnitOfWork
	settings  Settings
	observer  UseCaseObserver
}

func NewRolloutService(
	groups repository.GroupRepo,
	plans repository.PlanRepo,
	curricula repository.CurriculumSource,
	uow db.UnitOfWork,
	settings Settings,
	observers ...UseCaseObserver,
) RolloutService {
	return &rolloutService{
		groups:    groups,
		plans:     plans,
		curricula: curricula,
		uow:       uow,
		settings:  settings.withDefaults(),
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *rolloutService) ComputeRolloutPlan(ctx context.Context, groupID string, startDate time.Time) (plan *domain.RolloutPlan, err error) {
	startedAt := time.Now()
	fields := map[string]any{"group_id": groupID}
	defer func() { observe(ctx, s.observer, "compute-rollout-plan", startedAt, err, fields, nil) }()

	if groupID == "" {
		return nil, domain.NewValidationError("group_id", "group id is required")
	}
	plan, err = scheduler.CalculateRollout(groupID, startDate, s.curricula.Current(), s.settings.rolloutOptions())
	if err != nil {
		return nil, err
	}
	fields["start_date"] = plan.StartDate.Format(domain.DateLayout)
	fields["end_date"] = plan.EndDate.Format(domain.DateLayout)
	return plan, nil
}

func (s *rolloutService) ApplyRolloutPlan(ctx context.Context, req app.ApplyRolloutRequest) (resp *app.ApplyRolloutResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"group_id": req.GroupID}
	defer func() { observe(ctx, s.observer, "apply-rollout-plan", startedAt, err, fields, nil) }()

	if req.GroupID == "" {
		return nil, domain.NewValidationError("group_id", "group id is required")
	}
	curriculum := s.curricula.Current()

	unlock := s.settings.Locks.Lock(req.GroupID)
	defer unlock()

	resp, err = db.InTx(ctx, s.uow, func(ctx context.Context, tx db.DBTX) (*app.ApplyRolloutResponse, error) {
		txGroups := repository.NewSQLiteGroupRepo(tx)
		txPlans := repository.NewSQLitePlanRepo(tx)

		g, err := txGroups.GetByID(ctx, req.GroupID)
		if err != nil {
			return nil, err
		}
		start := g.StartDate
		if req.StartDate != nil {
			start = calendar.Day(*req.StartDate)
		}

		plan, err := scheduler.CalculateRollout(g.ID, start, curriculum, s.settings.rolloutOptions())
		if err != nil {
			return nil, err
		}
		out := &app.ApplyRolloutResponse{Plan: plan}

		prev, err := txPlans.Get(ctx, g.ID)
		switch {
		case err == nil:
			out.Replaced = true
			out.Drift = scheduler.DetectDrift(prev, plan)
		case errors.Is(err, repository.ErrNotFound):
		default:
			return nil, err
		}

		if !start.Equal(g.StartDate) {
			g.StartDate = start
			g.UpdatedAt = s.settings.Now().UTC()
			if err := txGroups.Update(ctx, g); err != nil {
				return nil, err
			}
		}
		if err := txPlans.Upsert(ctx, plan); err != nil {
			return nil, fmt.Errorf("persisting rollout plan: %w", err)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	plansApplied.Inc()
	fields["replaced"] = resp.Replaced
	fields["changed_fields"] = len(resp.Drift)
	fields["end_date"] = resp.Plan.EndDate.Format(domain.DateLayout)
	return resp, nil
}

func (s *rolloutService) GetPlan(ctx context.Context, groupID string) (*domain.RolloutPlan, error) {
	return s.plans.Get(ctx, groupID)
}

func (s *rolloutService) CheckDrift(ctx context.Context, groupID string) (report *app.DriftReport, err error) {
	startedAt := time.Now()
	fields := map[string]any{"group_id": groupID}
	var warnings []string
	defer func() { observe(ctx, s.observer, "check-drift", startedAt, err, fields, warnings) }()

	persisted, err := s.plans.Get(ctx, groupID)
	if err != nil {
		return nil, err
	}
	expected, err := scheduler.CalculateRollout(groupID, persisted.StartDate, s.curricula.Current(), s.settings.rolloutOptions())
	if err != nil {
		return nil, err
	}

	report = &app.DriftReport{GroupID: groupID}
	report.Warnings = scheduler.DetectDrift(persisted, expected)
	report.Current = len(report.Warnings) == 0
	for _, w := range report.Warnings {
		warnings = append(warnings, w.String())
	}
	driftWarnings.Add(float64(len(report.Warnings)))
	fields["drift_count"] = len(report.Warnings)
	return report, nil
}
