package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirashofficial/learnership-management-sub004/internal/db"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertGroup(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO learner_groups (id, name, start_date, created_at, updated_at)
		VALUES (?, 'Cohort', '2025-03-17', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`, id)
	return err
}

func groupExists(t *testing.T, database *sql.DB, id string) bool {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM learner_groups WHERE id = ?`, id).Scan(&n))
	return n == 1
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertGroup(ctx, tx, "g1")
	})
	require.NoError(t, err)
	assert.True(t, groupExists(t, database, "g1"), "row should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertGroup(ctx, tx, "g2"); err != nil {
			return err
		}
		return errors.New("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.False(t, groupExists(t, database, "g2"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertGroup(ctx, tx, "g3")
			panic("boom")
		})
	})
	assert.False(t, groupExists(t, database, "g3"), "row should not exist after panic rollback")
}

func TestWithinTx_CancelledContext(t *testing.T) {
	_, uow := openUoW(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestInTx_ReturnsValue(t *testing.T) {
	database, uow := openUoW(t)

	n, err := db.InTx(context.Background(), uow, func(ctx context.Context, tx db.DBTX) (int, error) {
		if err := insertGroup(ctx, tx, "g4"); err != nil {
			return 0, err
		}
		var count int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM learner_groups`).Scan(&count)
		return count, err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, groupExists(t, database, "g4"))

	n, err = db.InTx(context.Background(), uow, func(ctx context.Context, tx db.DBTX) (int, error) {
		return 7, errors.New("nope")
	})
	require.Error(t, err)
	assert.Zero(t, n)
}
