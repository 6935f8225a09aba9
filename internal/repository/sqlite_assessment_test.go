package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
	"github.com/sirashofficial/learnership-management-sub004/internal/testutil"
)

func TestAssessmentRepo_FactsFor(t *testing.T) {
	database := testutil.NewTestDB(t)
	g := seedGroup(t, database, "g1")
	students := NewSQLiteStudentRepo(database)
	repo := NewSQLiteAssessmentRepo(database)
	ctx := context.Background()

	s1 := testutil.NewTestStudent(g.ID, "Naledi")
	s2 := testutil.NewTestStudent(g.ID, "Bongani")
	require.NoError(t, students.Create(ctx, s1))
	require.NoError(t, students.Create(ctx, s2))

	require.NoError(t, repo.Create(ctx, testutil.NewTestFact(s1.ID, "US101", testutil.Date(2025, 4, 2))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestFact(s1.ID, "US201", testutil.Date(2025, 3, 28),
		testutil.WithResult(domain.ResultNotYetCompetent), testutil.WithAssessmentType(domain.AssessmentFormative))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestFact(s2.ID, "US101", testutil.Date(2025, 4, 2))))

	facts, err := repo.FactsFor(ctx, s1.ID)
	require.NoError(t, err)
	require.Len(t, facts, 2)
	assert.Equal(t, "US201", facts[0].UnitStandardID, "ordered by assessed date")
	assert.Equal(t, domain.ResultNotYetCompetent, facts[0].Result)
	assert.Equal(t, domain.AssessmentFormative, facts[0].Type)
	assert.True(t, facts[1].IsCompetent())
	assert.Equal(t, testutil.Date(2025, 4, 2), facts[1].AssessedDate)
}

func TestAssessmentRepo_RejectsUnknownResult(t *testing.T) {
	database := testutil.NewTestDB(t)
	g := seedGroup(t, database, "g1")
	s := testutil.NewTestStudent(g.ID, "Naledi")
	require.NoError(t, NewSQLiteStudentRepo(database).Create(context.Background(), s))

	f := testutil.NewTestFact(s.ID, "US101", testutil.Date(2025, 4, 2), testutil.WithResult("PASSED"))
	assert.Error(t, NewSQLiteAssessmentRepo(database).Create(context.Background(), f))
}
