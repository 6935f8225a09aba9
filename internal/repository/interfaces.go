package repository

import (
	"context"
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

type GroupRepo interface {
	Create(ctx context.Context, g *domain.Group) error
	GetByID(ctx context.Context, id string) (*domain.Group, error)
	List(ctx context.Context) ([]*domain.Group, error)
	Update(ctx context.Context, g *domain.Group) error
	Delete(ctx context.Context, id string) error
}

type StudentRepo interface {
	Create(ctx context.Context, s *domain.Student) error
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	ListByGroup(ctx context.Context, groupID string) ([]*domain.Student, error)
}

// PlanRepo persists one rollout plan per group in normalized tables. Upsert
// replaces the plan and all of its windows wholesale.
type PlanRepo interface {
	Get(ctx context.Context, groupID string) (*domain.RolloutPlan, error)
	Upsert(ctx context.Context, plan *domain.RolloutPlan) error
	Delete(ctx context.Context, groupID string) error
}

// InsertResult reports the outcome of a batch session insert. Rejected keys
// lost the (date, start_time, venue) uniqueness race to another writer.
type InsertResult struct {
	Inserted []domain.Session
	Rejected []domain.SessionKey
}

type SessionRepo interface {
	// ExistingKeys returns the session keys the group already holds in [from, to].
	ExistingKeys(ctx context.Context, groupID string, from, to time.Time) (map[domain.SessionKey]bool, error)
	// BookedSlots maps every slot in [from, to] held by a group other than
	// excludeGroupID to its owner.
	BookedSlots(ctx context.Context, from, to time.Time, excludeGroupID string) (map[domain.SlotKey]string, error)
	InsertMany(ctx context.Context, sessions []domain.Session) (InsertResult, error)
	ListByGroup(ctx context.Context, groupID string, from, to *time.Time) ([]*domain.Session, error)
}

// AssessmentRepo is the assessment fact source consumed by reconciliation.
type AssessmentRepo interface {
	Create(ctx context.Context, f *domain.AssessmentFact) error
	FactsFor(ctx context.Context, studentID string) ([]domain.AssessmentFact, error)
}

type TemplateRepo interface {
	Upsert(ctx context.Context, t *domain.ScheduleTemplate) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleTemplate, error)
	List(ctx context.Context) ([]*domain.ScheduleTemplate, error)
}

type GroupScheduleRepo interface {
	Upsert(ctx context.Context, gs *domain.GroupSchedule) error
	GetByGroup(ctx context.Context, groupID string) (*domain.GroupSchedule, error)
}

// CurriculumSource supplies the qualification definition plans are built from.
type CurriculumSource interface {
	Current() *domain.Curriculum
}
