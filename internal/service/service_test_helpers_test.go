package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sirashofficial/learnership-management-sub004/internal/app"
	"github.com/sirashofficial/learnership-management-sub004/internal/curriculum"
	"github.com/sirashofficial/learnership-management-sub004/internal/db"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
	"github.com/sirashofficial/learnership-management-sub004/internal/repository"
	"github.com/sirashofficial/learnership-management-sub004/internal/testutil"
)

// fixedNow is a Wednesday inside the small curriculum's second module when
// the plan starts on 2025-03-17.
var fixedNow = time.Date(2025, time.April, 9, 10, 30, 0, 0, time.UTC)

type fixture struct {
	db        *sql.DB
	uow       db.UnitOfWork
	groups    *repository.SQLiteGroupRepo
	students  *repository.SQLiteStudentRepo
	plans     *repository.SQLitePlanRepo
	sessions  *repository.SQLiteSessionRepo
	facts     *repository.SQLiteAssessmentRepo
	templates *repository.SQLiteTemplateRepo
	source    *curriculum.Source
	settings  Settings
	observer  *recordingObserver

	rollout   RolloutService
	generator SessionService
	progress  ProgressService
	people    GroupService
	schedules TemplateService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	f := &fixture{
		db:        database,
		uow:       testutil.NewTestUoW(database),
		groups:    repository.NewSQLiteGroupRepo(database),
		students:  repository.NewSQLiteStudentRepo(database),
		plans:     repository.NewSQLitePlanRepo(database),
		sessions:  repository.NewSQLiteSessionRepo(database),
		facts:     repository.NewSQLiteAssessmentRepo(database),
		templates: repository.NewSQLiteTemplateRepo(database),
		source:    curriculum.StaticSource(testutil.SmallCurriculum()),
		settings: Settings{
			Locks: NewGroupLocks(),
			Now:   func() time.Time { return fixedNow },
		},
		observer: &recordingObserver{},
	}
	f.rollout = NewRolloutService(f.groups, f.plans, f.source, f.uow, f.settings, f.observer)
	f.generator = NewSessionService(f.sessions, f.uow, f.settings, f.observer)
	f.progress = NewProgressService(f.students, f.plans, f.facts, f.source, f.settings, f.observer)
	f.people = NewGroupService(f.groups, f.students, f.facts, f.settings)
	f.schedules = NewTemplateService(f.templates, f.uow, f.observer)
	return f
}

// seedPlannedGroup creates a group starting 2025-03-17 and applies its plan.
func (f *fixture) seedPlannedGroup(t *testing.T, name string) *domain.Group {
	t.Helper()
	ctx := context.Background()
	g := testutil.NewTestGroup(name)
	require.NoError(t, f.groups.Create(ctx, g))
	_, err := f.rollout.ApplyRolloutPlan(ctx, app.ApplyRolloutRequest{GroupID: g.ID})
	require.NoError(t, err)
	return g
}

func (f *fixture) importTemplate(t *testing.T, tpl *domain.ScheduleTemplate) {
	t.Helper()
	require.NoError(t, f.schedules.Import(context.Background(), tpl))
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last(name string) (UseCaseEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Name == name {
			return r.events[i], true
		}
	}
	return UseCaseEvent{}, false
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := testutil.Date(y, m, d)
	return &t
}
