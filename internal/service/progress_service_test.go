package service

import (
	"context"
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
	"github.com/sirashofficial/learnership-management-sub004/internal/repository"
	"github.com/sirashofficial/learnership-management-sub004/internal/testutil"
)

func TestGetProgressSnapshot_DefaultsAsOfToToday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.seedPlannedGroup(t, "Cohort P")

	st := testutil.NewTestStudent(g.ID, "Thandi")
	require.NoError(t, f.students.Create(ctx, st))
	// Two competent results for the same unit count once.
	require.NoError(t, f.facts.Create(ctx, testutil.NewTestFact(st.ID, "US101", testutil.Date(2025, time.March, 27))))
	require.NoError(t, f.facts.Create(ctx, testutil.NewTestFact(st.ID, "US101", testutil.Date(2025, time.March, 28))))

	snap, err := f.progress.GetProgressSnapshot(ctx, st.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, testutil.Date(2025, time.April, 9), snap.AsOf)
	assert.Equal(t, 8, snap.EarnedCredits)
	assert.Equal(t, 1, snap.UniqueUnitsPassed)
	// US101 complete (8) plus two of US201's five days (4 * 2/5).
	assert.InDelta(t, 9.6, snap.ExpectedCredits, 0.001)
	assert.InDelta(t, 1.6, snap.CreditGap, 0.001)
	assert.Equal(t, domain.ClassOnTrack, snap.Classification)
	require.NotNil(t, snap.LastCompetentAt)
	assert.Equal(t, testutil.Date(2025, time.March, 28), *snap.LastCompetentAt)
}

func TestGetProgressSnapshot_ExplicitAsOfAndWarnings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.seedPlannedGroup(t, "Cohort W")

	st := testutil.NewTestStudent(g.ID, "Sipho")
	require.NoError(t, f.students.Create(ctx, st))
	require.NoError(t, f.facts.Create(ctx, testutil.NewTestFact(st.ID, "US999", testutil.Date(2025, time.March, 20))))

	snap, err := f.progress.GetProgressSnapshot(ctx, st.ID, datePtr(2025, time.March, 10))
	require.NoError(t, err)

	assert.Zero(t, snap.ExpectedCredits)
	codes := make(map[domain.StaleDataCode]bool)
	for _, w := range snap.Warnings {
		codes[w.Code] = true
	}
	assert.True(t, codes[domain.StaleAsOfBeforePlan])
	assert.True(t, codes[domain.StaleFactAfterAsOf])

	ev, ok := f.observer.last("progress-snapshot")
	require.True(t, ok)
	assert.NotEmpty(t, ev.Warnings)
}

func TestGetProgressSnapshot_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.progress.GetProgressSnapshot(ctx, "", nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.progress.GetProgressSnapshot(ctx, "ghost", nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	g := testutil.NewTestGroup("Unplanned")
	require.NoError(t, f.groups.Create(ctx, g))
	st := testutil.NewTestStudent(g.ID, "")
	require.NoError(t, f.students.Create(ctx, st))

	_, err = f.progress.GetProgressSnapshot(ctx, st.ID, nil)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "plan", ve.Field)
}

func TestReconcileGroup_OrdersMostUrgentFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.seedPlannedGroup(t, "Cohort Batch")

	active := testutil.NewTestStudent(g.ID, "Active", testutil.WithStudentID("s-active"))
	silent := testutil.NewTestStudent(g.ID, "Silent", testutil.WithStudentID("s-silent"))
	late := testutil.NewTestStudent(g.ID, "Late joiner", testutil.WithStudentID("s-late"),
		testutil.WithEnrolledAt(testutil.Date(2025, time.April, 22)))
	for _, st := range []*domain.Student{active, silent, late} {
		require.NoError(t, f.students.Create(ctx, st))
	}
	require.NoError(t, f.facts.Create(ctx, testutil.NewTestFact(active.ID, "US101", testutil.Date(2025, time.March, 28))))
	require.NoError(t, f.facts.Create(ctx, testutil.NewTestFact(active.ID, "US201", testutil.Date(2025, time.April, 11))))

	resp, err := f.progress.ReconcileGroup(ctx, g.ID, datePtr(2025, time.April, 30))
	require.NoError(t, err)
	require.Len(t, resp.Snapshots, 3)

	assert.Equal(t, "s-silent", resp.Snapshots[0].StudentID)
	assert.Equal(t, domain.ClassStalled, resp.Snapshots[0].Classification)
	assert.Equal(t, domain.SeverityHigh, resp.Snapshots[0].Severity)

	assert.Equal(t, domain.ClassOnTrack, resp.Snapshots[1].Classification)
	assert.Equal(t, domain.ClassOnTrack, resp.Snapshots[2].Classification)
	// Onboarding keeps both on track; the larger gap sorts first.
	assert.Equal(t, "s-late", resp.Snapshots[1].StudentID)
	assert.InDelta(t, 20.0, resp.Snapshots[1].CreditGap, 0.001)
	assert.Equal(t, "s-active", resp.Snapshots[2].StudentID)
	assert.InDelta(t, 8.0, resp.Snapshots[2].CreditGap, 0.001)

	assert.Equal(t, 1, resp.Counts[domain.ClassStalled])
	assert.Equal(t, 2, resp.Counts[domain.ClassOnTrack])
	assert.Equal(t, testutil.Date(2025, time.April, 30), resp.AsOf)
}

func TestReconcileGroup_NoPlan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := testutil.NewTestGroup("Unplanned")
	require.NoError(t, f.groups.Create(ctx, g))

	_, err := f.progress.ReconcileGroup(ctx, g.ID, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReconcileGroup_RecordsClassificationMetrics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.seedPlannedGroup(t, "Cohort M")
	st := testutil.NewTestStudent(g.ID, "")
	require.NoError(t, f.students.Create(ctx, st))

	counter := learnerClassifications.WithLabelValues(string(domain.ClassStalled), string(domain.SeverityHigh))
	before := promtest.ToFloat64(counter)

	_, err := f.progress.ReconcileGroup(ctx, g.ID, datePtr(2025, time.April, 30))
	require.NoError(t, err)

	assert.Equal(t, before+1, promtest.ToFloat64(counter))
}
