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

type sessionService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	settings Settings
	observer UseCaseObserver
}

func NewSessionService(sessions repository.SessionRepo, uow db.UnitOfWork, settings Settings, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		sessions: sessions,
		uow:      uow,
		settings: settings.withDefaults(),
		observer: useCaseObserverOrNoop(observers),
	}
}

// recurrence is the resolved template plus any range the group's schedule
// imposes on it.
type recurrence struct {
	template *domain.ScheduleTemplate
	source   string
	from     *time.Time
	to       *time.Time
}

func validateGenerateRequest(req app.GenerateSessionsRequest) error {
	if req.GroupID == "" {
		return domain.NewValidationError("group_id", "group id is required")
	}
	if req.TemplateID != "" && req.Cadence != nil {
		return domain.NewValidationError("source", "give either a template or a cadence, not both")
	}
	if req.From != nil && req.To != nil && calendar.Day(*req.To).Before(calendar.Day(*req.From)) {
		return domain.NewValidationError("to", fmt.Sprintf("end date %s is before start date %s",
			req.To.Format(domain.DateLayout), req.From.Format(domain.DateLayout)))
	}
	return nil
}

func (s *sessionService) GenerateSessions(ctx context.Context, req app.GenerateSessionsRequest) (resp *app.GenerateSessionsResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"group_id": req.GroupID, "dry_run": req.DryRun}
	var warnings []string
	defer func() { observe(ctx, s.observer, "generate-sessions", startedAt, err, fields, warnings) }()

	if err = validateGenerateRequest(req); err != nil {
		return nil, err
	}

	unlock := s.settings.Locks.Lock(req.GroupID)
	defer unlock()

	resp, err = db.InTx(ctx, s.uow, func(ctx context.Context, tx db.DBTX) (*app.GenerateSessionsResponse, error) {
		txGroups := repository.NewSQLiteGroupRepo(tx)
		txPlans := repository.NewSQLitePlanRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)

		if _, err := txGroups.GetByID(ctx, req.GroupID); err != nil {
			return nil, err
		}
		plan, err := txPlans.Get(ctx, req.GroupID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewValidationError("plan", "group "+req.GroupID+" has no applied rollout plan")
		}
		if err != nil {
			return nil, err
		}

		rec, err := resolveRecurrence(ctx, tx, req)
		if err != nil {
			return nil, err
		}
		fields["source"] = rec.source

		from, to := clipRange(plan.StartDate, plan.EndDate, req.From, req.To)
		from, to = clipRange(from, to, rec.from, rec.to)
		out := &app.GenerateSessionsResponse{GroupID: req.GroupID, DryRun: req.DryRun}
		if to.Before(from) {
			return out, nil
		}

		existing, err := txSessions.ExistingKeys(ctx, req.GroupID, from, to)
		if err != nil {
			return nil, err
		}
		booked, err := txSessions.BookedSlots(ctx, from, to, req.GroupID)
		if err != nil {
			return nil, err
		}

		seq, err := scheduler.ExpandPlan(scheduler.PlanExpandRequest{
			Plan:         plan,
			Template:     rec.template,
			ExistingKeys: existing,
			Booked:       booked,
			From:         &from,
			To:           &to,
			Calendar:     s.settings.Calendar,
		})
		if err != nil {
			return nil, err
		}
		res := scheduler.Collect(seq)
		out.Conflicts = res.Conflicts

		if req.DryRun {
			out.Created = res.Sessions
			scheduler.SortSessions(out.Created)
			return out, nil
		}
		ins, err := txSessions.InsertMany(ctx, res.Sessions)
		if err != nil {
			return nil, err
		}
		out.Created = ins.Inserted
		out.Rejected = ins.Rejected
		scheduler.SortSessions(out.Created)
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	for i := range resp.Conflicts {
		warnings = append(warnings, resp.Conflicts[i].Error())
	}
	for _, k := range resp.Rejected {
		warnings = append(warnings, fmt.Sprintf("rejected: %s %s at %q", k.Date, k.StartTime, k.Venue))
	}
	if req.DryRun {
		sessionsGenerated.WithLabelValues("dry_run").Add(float64(len(resp.Created)))
	} else {
		sessionsGenerated.WithLabelValues("created").Add(float64(len(resp.Created)))
	}
	sessionsGenerated.WithLabelValues("conflict").Add(float64(len(resp.Conflicts)))
	sessionsGenerated.WithLabelValues("rejected").Add(float64(len(resp.Rejected)))
	fields["created"] = len(resp.Created)
	fields["conflicts"] = len(resp.Conflicts)
	fields["rejected"] = len(resp.Rejected)
	return resp, nil
}

// resolveRecurrence picks the request's cadence or template, falling back to
// the template bound through the group's schedule.
func resolveRecurrence(ctx context.Context, tx db.DBTX, req app.GenerateSessionsRequest) (recurrence, error) {
	templates := repository.NewSQLiteTemplateRepo(tx)

	switch {
	case req.Cadence != nil:
		return recurrence{template: req.Cadence.Template(), source: "cadence"}, nil
	case req.TemplateID != "":
		tpl, err := templates.GetByID(ctx, req.TemplateID)
		if err != nil {
			return recurrence{}, err
		}
		return recurrence{template: tpl, source: "template"}, nil
	}

	gs, err := repository.NewSQLiteGroupScheduleRepo(tx).GetByGroup(ctx, req.GroupID)
	if errors.Is(err, repository.ErrNotFound) {
		return recurrence{}, domain.NewValidationError("template", "no template or cadence given and group "+req.GroupID+" has no schedule")
	}
	if err != nil {
		return recurrence{}, err
	}
	tpl, err := templates.GetByID(ctx, gs.TemplateID)
	if err != nil {
		return recurrence{}, err
	}
	start := gs.StartDate
	return recurrence{template: tpl, source: "schedule", from: &start, to: gs.EndDate}, nil
}

// clipRange intersects [from, to] with the optional bounds lo and hi.
func clipRange(from, to time.Time, lo, hi *time.Time) (time.Time, time.Time) {
	if lo != nil && calendar.Day(*lo).After(from) {
		from = calendar.Day(*lo)
	}
	if hi != nil && calendar.Day(*hi).Before(to) {
		to = calendar.Day(*hi)
	}
	return from, to
}

func (s *sessionService) ListSessions(ctx context.Context, groupID string, from, to *time.Time) ([]*domain.Session, error) {
	return s.sessions.ListByGroup(ctx, groupID, from, to)
}
