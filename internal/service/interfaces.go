package service

import (
	"context"
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/app"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

type RolloutService interface {
	app.ComputeRolloutPlanUseCase
	// ApplyRolloutPlan recomputes the group's plan and replaces the persisted
	// one wholesale.
	ApplyRolloutPlan(ctx context.Context, req app.ApplyRolloutRequest) (*app.ApplyRolloutResponse, error)
	GetPlan(ctx context.Context, groupID string) (*domain.RolloutPlan, error)
	// CheckDrift compares the persisted plan with a fresh calculation from its
	// own start date. It never writes.
	CheckDrift(ctx context.Context, groupID string) (*app.DriftReport, error)
}

type SessionService interface {
	app.GenerateSessionsUseCase
	ListSessions(ctx context.Context, groupID string, from, to *time.Time) ([]*domain.Session, error)
}

type ProgressService interface {
	app.ProgressSnapshotUseCase
	// ReconcileGroup snapshots every learner in the group, most urgent first.
	ReconcileGroup(ctx context.Context, groupID string, asOf *time.Time) (*app.GroupProgressResponse, error)
}

type GroupService interface {
	Create(ctx context.Context, g *domain.Group) error
	GetByID(ctx context.Context, id string) (*domain.Group, error)
	List(ctx context.Context) ([]*domain.Group, error)
	AddStudent(ctx context.Context, s *domain.Student) error
	ListStudents(ctx context.Context, groupID string) ([]*domain.Student, error)
	RecordAssessment(ctx context.Context, f *domain.AssessmentFact) error
}

type TemplateService interface {
	Import(ctx context.Context, t *domain.ScheduleTemplate) error
	ImportFile(ctx context.Context, path string) (*domain.ScheduleTemplate, error)
	List(ctx context.Context) ([]*domain.ScheduleTemplate, error)
	// Assign binds a group to a template over a date range.
	Assign(ctx context.Context, gs *domain.GroupSchedule) error
}
