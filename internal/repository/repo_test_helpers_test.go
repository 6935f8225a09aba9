package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
	"github.com/sirashofficial/learnership-management-sub004/internal/scheduler"
	"github.com/sirashofficial/learnership-management-sub004/internal/testutil"
)

// seedGroup persists a group starting on testutil's default Monday.
func seedGroup(t *testing.T, database *sql.DB, id string) *domain.Group {
	t.Helper()
	g := testutil.NewTestGroup("", testutil.WithGroupID(id))
	require.NoError(t, NewSQLiteGroupRepo(database).Create(context.Background(), g))
	return g
}

func smallPlan(t *testing.T, groupID string) *domain.RolloutPlan {
	t.Helper()
	plan, err := scheduler.CalculateRollout(groupID, testutil.Date(2025, 3, 17), testutil.SmallCurriculum(), scheduler.RolloutOptions{})
	require.NoError(t, err)
	return plan
}
