package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

var testNameCounter atomic.Int64

func nextName(prefix string) string {
	return fmt.Sprintf("%s %02d", prefix, testNameCounter.Add(1))
}

// Date builds a UTC civil date.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Group options
type GroupOption func(*domain.Group)

func WithGroupStart(d time.Time) GroupOption {
	return func(g *domain.Group) {
		g.StartDate = d
	}
}

func WithGroupID(id string) GroupOption {
	return func(g *domain.Group) {
		g.ID = id
	}
}

func NewTestGroup(name string, opts ...GroupOption) *domain.Group {
	if name == "" {
		name = nextName("Cohort")
	}
	now := time.Now().UTC()
	g := &domain.Group{
		ID:        uuid.New().String(),
		Name:      name,
		StartDate: Date(2025, time.March, 17),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Student options
type StudentOption func(*domain.Student)

func WithEnrolledAt(d time.Time) StudentOption {
	return func(s *domain.Student) {
		s.EnrolledAt = d
	}
}

func WithStudentID(id string) StudentOption {
	return func(s *domain.Student) {
		s.ID = id
	}
}

// NewTestStudent enrols a learner in group on the group's default start.
func NewTestStudent(groupID, name string, opts ...StudentOption) *domain.Student {
	if name == "" {
		name = nextName("Learner")
	}
	s := &domain.Student{
		ID:         uuid.New().String(),
		GroupID:    groupID,
		Name:       name,
		EnrolledAt: Date(2025, time.March, 17),
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AssessmentFact options
type FactOption func(*domain.AssessmentFact)

func WithResult(r domain.AssessmentResult) FactOption {
	return func(f *domain.AssessmentFact) {
		f.Result = r
	}
}

func WithAssessmentType(t domain.AssessmentType) FactOption {
	return func(f *domain.AssessmentFact) {
		f.Type = t
	}
}

// NewTestFact records a competent summative result by default.
func NewTestFact(studentID, unitStandardID string, assessed time.Time, opts ...FactOption) *domain.AssessmentFact {
	f := &domain.AssessmentFact{
		ID:             uuid.New().String(),
		StudentID:      studentID,
		UnitStandardID: unitStandardID,
		Type:           domain.AssessmentSummative,
		Result:         domain.ResultCompetent,
		AssessedDate:   assessed,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Template options
type TemplateOption func(*domain.ScheduleTemplate)

func WithSlot(wd time.Weekday, start, end, venue string) TemplateOption {
	return func(t *domain.ScheduleTemplate) {
		t.Slots[wd] = append(t.Slots[wd], domain.TemplateSlot{
			StartTime: start,
			EndTime:   end,
			Venue:     venue,
			Activity:  domain.ActivityLecture,
		})
	}
}

// NewTestTemplate returns a template with a Monday 09:00-12:00 lecture
// unless slots are supplied.
func NewTestTemplate(id string, opts ...TemplateOption) *domain.ScheduleTemplate {
	t := &domain.ScheduleTemplate{
		ID:    id,
		Name:  "Template " + id,
		Slots: make(map[time.Weekday][]domain.TemplateSlot),
	}
	for _, opt := range opts {
		opt(t)
	}
	if len(t.Slots) == 0 {
		WithSlot(time.Monday, "09:00", "12:00", "Lecture Room")(t)
	}
	return t
}

// SmallCurriculum is a two-module qualification: M1 {US101: 8} and
// M2 {US201: 4, US202: 8}. Started on a Monday, M1's unit runs ten working
// days and each module closes with a five-day workplace buffer.
func SmallCurriculum() *domain.Curriculum {
	return &domain.Curriculum{
		ID:                   "small",
		Name:                 "Small qualification",
		QualificationCredits: 20,
		RequiredCredits:      20,
		Modules: []domain.Module{
			{Code: "M1", Name: "Foundations", Credits: 8, UnitStandards: []domain.UnitStandard{
				{ID: "US101", Title: "Basics", Credits: 8},
			}},
			{Code: "M2", Name: "Practice", Credits: 12, UnitStandards: []domain.UnitStandard{
				{ID: "US201", Title: "Applied", Credits: 4},
				{ID: "US202", Title: "Project", Credits: 8},
			}},
		},
	}
}
