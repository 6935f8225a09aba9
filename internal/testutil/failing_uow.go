package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/sirashofficial/learnership-management-sub004/internal/db"
)

// FailOnNthExecUoW runs each WithinTx callback in a real transaction but
// makes one write fail, so tests can check that a plan replacement or a
// session batch leaves nothing behind.
//
// Writes are ExecContext calls counted from 1 per transaction. The failing
// write is the FailOn-th one or, when FailWhen is set, the first whose SQL
// contains FailWhen. Reads are never intercepted.
type FailOnNthExecUoW struct {
	DB       *sql.DB
	FailOn   int32
	FailWhen string
	Err      error

	mu       sync.Mutex
	executed []string
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingTx{DBTX: tx, uow: u}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

// Executed lists the first line of every write attempted so far, including
// the one that was made to fail.
func (u *FailOnNthExecUoW) Executed() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.executed...)
}

func (u *FailOnNthExecUoW) record(query string) {
	line := strings.TrimSpace(query)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	u.mu.Lock()
	u.executed = append(u.executed, line)
	u.mu.Unlock()
}

type failingTx struct {
	db.DBTX
	uow    *FailOnNthExecUoW
	count  int32
	failed bool
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.count++
	f.uow.record(query)
	if !f.failed && f.matches(query) {
		f.failed = true
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

func (f *failingTx) matches(query string) bool {
	if f.uow.FailWhen != "" {
		return strings.Contains(query, f.uow.FailWhen)
	}
	return f.count == f.uow.FailOn
}
