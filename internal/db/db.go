package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const memoryPath = ":memory:"

// pragmas apply to every pooled connection. Plan replacement relies on
// foreign keys to cascade window rows, and concurrent session writers wait
// out the busy timeout instead of failing with SQLITE_BUSY.
var pragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
}

func dsn(path string) string {
	params := make([]string, len(pragmas))
	for i, p := range pragmas {
		params[i] = "_pragma=" + p
	}
	return path + "?" + strings.Join(params, "&")
}

// OpenDB opens the rollout database at path, creating its directory, and
// brings the schema up to date.
//
// ":memory:" gives a private database pinned to one connection, so every
// query sees the same schema. File databases run in WAL mode so progress
// reads do not block session generation.
func OpenDB(path string) (*sql.DB, error) {
	memory := path == memoryPath
	if !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	if memory {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}
