package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sirashofficial/learnership-management-sub004/internal/app"
	"github.com/sirashofficial/learnership-management-sub004/internal/calendar"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
	"github.com/sirashofficial/learnership-management-sub004/internal/repository"
	"github.com/sirashofficial/learnership-management-sub004/internal/scheduler"
)

type progressService struct {
	students  repository.StudentRepo
	plans     repository.PlanRepo
	facts     repository.AssessmentRepo
	curricula repository.CurriculumSource
	settings  Settings
	observer  UseCaseObserver
}

func NewProgressService(
	students repository.StudentRepo,
	plans repository.PlanRepo,
	facts repository.AssessmentRepo,
	curricula repository.CurriculumSource,
	settings Settings,
	observers ...UseCaseObserver,
) ProgressService {
	return &progressService{
		students:  students,
		plans:     plans,
		facts:     facts,
		curricula: curricula,
		settings:  settings.withDefaults(),
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *progressService) asOf(asOf *time.Time) time.Time {
	if asOf == nil {
		return s.settings.today()
	}
	return calendar.Day(*asOf)
}

// planFor loads the group's plan. A missing plan is passed on as nil so the
// reconciler reports it as a validation error.
func (s *progressService) planFor(ctx context.Context, groupID string) (*domain.RolloutPlan, error) {
	plan, err := s.plans.Get(ctx, groupID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return plan, err
}

func (s *progressService) snapshot(ctx context.Context, st *domain.Student, plan *domain.RolloutPlan, curriculum *domain.Curriculum, asOf time.Time) (domain.ProgressSnapshot, error) {
	facts, err := s.facts.FactsFor(ctx, st.ID)
	if err != nil {
		return domain.ProgressSnapshot{}, err
	}
	in := scheduler.ReconcileInput{
		StudentID:  st.ID,
		Plan:       plan,
		Curriculum: curriculum,
		Facts:      facts,
		AsOf:       asOf,
		Thresholds: s.settings.Thresholds,
		Calendar:   s.settings.Calendar,
	}
	if !st.EnrolledAt.IsZero() {
		enrolled := st.EnrolledAt
		in.EnrolledAt = &enrolled
	}
	snap, err := scheduler.Reconcile(in)
	if err != nil {
		return domain.ProgressSnapshot{}, err
	}
	recordSnapshot(snap)
	return snap, nil
}

func recordSnapshot(snap domain.ProgressSnapshot) {
	sev := string(snap.Severity)
	if sev == "" {
		sev = "none"
	}
	learnerClassifications.WithLabelValues(string(snap.Classification), sev).Inc()
	for _, w := range snap.Warnings {
		staleDataWarnings.WithLabelValues(string(w.Code)).Inc()
	}
}

func (s *progressService) GetProgressSnapshot(ctx context.Context, studentID string, asOf *time.Time) (snap *domain.ProgressSnapshot, err error) {
	startedAt := time.Now()
	fields := map[string]any{"student_id": studentID}
	var warnings []string
	defer func() { observe(ctx, s.observer, "progress-snapshot", startedAt, err, fields, warnings) }()

	if studentID == "" {
		return nil, domain.NewValidationError("student_id", "student id is required")
	}
	st, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	plan, err := s.planFor(ctx, st.GroupID)
	if err != nil {
		return nil, err
	}

	out, err := s.snapshot(ctx, st, plan, s.curricula.Current(), s.asOf(asOf))
	if err != nil {
		return nil, err
	}
	for _, w := range out.Warnings {
		warnings = append(warnings, w.String())
	}
	fields["classification"] = string(out.Classification)
	fields["credit_gap"] = out.CreditGap
	return &out, nil
}

func (s *progressService) ReconcileGroup(ctx context.Context, groupID string, asOf *time.Time) (resp *app.GroupProgressResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"group_id": groupID}
	var warnings []string
	defer func() { observe(ctx, s.observer, "reconcile-group", startedAt, err, fields, warnings) }()

	students, err := s.students.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	plan, err := s.planFor(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.NewValidationError("plan", "group "+groupID+" has no applied rollout plan")
	}
	curriculum := s.curricula.Current()
	day := s.asOf(asOf)

	snaps := make([]domain.ProgressSnapshot, len(students))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.settings.ReconcileWorkers)
	for i, st := range students {
		g.Go(func() error {
			snap, err := s.snapshot(gctx, st, plan, curriculum, day)
			if err != nil {
				return err
			}
			snaps[i] = snap
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	scheduler.SortSnapshots(snaps)
	resp = &app.GroupProgressResponse{
		GroupID:   groupID,
		AsOf:      day,
		Snapshots: snaps,
		Counts:    make(map[domain.Classification]int),
	}
	for _, snap := range snaps {
		resp.Counts[snap.Classification]++
		for _, w := range snap.Warnings {
			warnings = append(warnings, snap.StudentID+": "+w.String())
		}
	}
	fields["students"] = len(snaps)
	return resp, nil
}
