package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/sirashofficial/learnership-management-sub004/internal/db"
)

// NewTestDB opens a migrated in-memory database pinned to one connection.
// Never hold a non-transactional repo call open inside a WithinTx callback
// on it: the second statement would wait for the only connection.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTestDB(t, ":memory:")
}

// NewFileTestDB opens a migrated database file in t.TempDir. All pooled
// connections share it, so concurrent writers really contend for the
// sessions slot constraint.
func NewFileTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTestDB(t, filepath.Join(t.TempDir(), "rollout_test.db"))
}

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	if err != nil {
		t.Fatalf("opening test database %s: %v", path, err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
