package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/sirashofficial/learnership-management-sub004/internal/calendar"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
	"github.com/sirashofficial/learnership-management-sub004/internal/repository"
)

type groupService struct {
	groups   repository.GroupRepo
	students repository.StudentRepo
	facts    repository.AssessmentRepo
	settings Settings
}

func NewGroupService(groups repository.GroupRepo, students repository.StudentRepo, facts repository.AssessmentRepo, settings Settings) GroupService {
	return &groupService{groups: groups, students: students, facts: facts, settings: settings.withDefaults()}
}

func (s *groupService) Create(ctx context.Context, g *domain.Group) error {
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		return domain.NewValidationError("name", "group name is required")
	}
	if g.StartDate.IsZero() {
		return domain.NewValidationError("start_date", "start date is required")
	}
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	g.StartDate = calendar.Day(g.StartDate)
	now := s.settings.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now
	return s.groups.Create(ctx, g)
}

func (s *groupService) GetByID(ctx context.Context, id string) (*domain.Group, error) {
	return s.groups.GetByID(ctx, id)
}

func (s *groupService) List(ctx context.Context) ([]*domain.Group, error) {
	return s.groups.List(ctx)
}

// AddStudent enrols a learner. Without an explicit enrolment date the
// learner joins on the group's start date.
func (s *groupService) AddStudent(ctx context.Context, st *domain.Student) error {
	st.Name = strings.TrimSpace(st.Name)
	if st.Name == "" {
		return domain.NewValidationError("name", "student name is required")
	}
	g, err := s.groups.GetByID(ctx, st.GroupID)
	if err != nil {
		return err
	}
	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	if st.EnrolledAt.IsZero() {
		st.EnrolledAt = g.StartDate
	}
	st.EnrolledAt = calendar.Day(st.EnrolledAt)
	st.CreatedAt = s.settings.Now().UTC()
	return s.students.Create(ctx, st)
}

func (s *groupService) ListStudents(ctx context.Context, groupID string) ([]*domain.Student, error) {
	return s.students.ListByGroup(ctx, groupID)
}

// RecordAssessment stores an assessment outcome. Unit standards are not
// checked against the curriculum here; reconciliation flags unknown ones.
func (s *groupService) RecordAssessment(ctx context.Context, f *domain.AssessmentFact) error {
	if f.UnitStandardID == "" {
		return domain.NewValidationError("unit_standard_id", "unit standard is required")
	}
	if !domain.ValidAssessmentResults[string(f.Result)] {
		return domain.NewValidationError("result", "result must be COMPETENT, NOT_YET_COMPETENT or ABSENT")
	}
	if f.Type == "" {
		f.Type = domain.AssessmentSummative
	}
	if !domain.ValidAssessmentTypes[string(f.Type)] {
		return domain.NewValidationError("type", "type must be FORMATIVE, SUMMATIVE or WORKPLACE")
	}
	if f.AssessedDate.IsZero() {
		f.AssessedDate = s.settings.today()
	}
	if _, err := s.students.GetByID(ctx, f.StudentID); err != nil {
		return err
	}
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	f.AssessedDate = calendar.Day(f.AssessedDate)
	return s.facts.Create(ctx, f)
}
