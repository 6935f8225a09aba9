package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirashofficial/learnership-management-sub004/internal/db"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// SQLiteGroupRepo implements GroupRepo using a SQLite database.
type SQLiteGroupRepo struct {
	db db.DBTX
}

func NewSQLiteGroupRepo(conn db.DBTX) *SQLiteGroupRepo {
	return &SQLiteGroupRepo{db: conn}
}

const groupColumns = `id, name, start_date, created_at, updated_at`

func (r *SQLiteGroupRepo) Create(ctx context.Context, g *domain.Group) error {
	query := `INSERT INTO learner_groups (` + groupColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.Name,
		g.StartDate.Format(dateLayout),
		formatTimestamp(g.CreatedAt),
		formatTimestamp(g.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting group: %w", err)
	}
	return nil
}

func (r *SQLiteGroupRepo) GetByID(ctx context.Context, id string) (*domain.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM learner_groups WHERE id = ?`
	g, err := scanGroup(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %s: %w", id, ErrNotFound)
	}
	return g, err
}

func (r *SQLiteGroupRepo) List(ctx context.Context) ([]*domain.Group, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+groupColumns+` FROM learner_groups ORDER BY start_date, name`)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}
	defer rows.Close()

	var groups []*domain.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating groups: %w", err)
	}
	return groups, nil
}

func (r *SQLiteGroupRepo) Update(ctx context.Context, g *domain.Group) error {
	query := `UPDATE learner_groups SET name = ?, start_date = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, g.Name, g.StartDate.Format(dateLayout), formatTimestamp(g.UpdatedAt), g.ID)
	if err != nil {
		return fmt.Errorf("updating group: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("group %s: %w", g.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteGroupRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM learner_groups WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting group: %w", err)
	}
	return nil
}

func scanGroup(row scanner) (*domain.Group, error) {
	var g domain.Group
	var startDate, createdAt, updatedAt string
	if err := row.Scan(&g.ID, &g.Name, &startDate, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning group: %w", err)
	}
	var err error
	if g.StartDate, err = parseDate("start_date", startDate); err != nil {
		return nil, err
	}
	g.CreatedAt = parseTimestamp(createdAt)
	g.UpdatedAt = parseTimestamp(updatedAt)
	return &g, nil
}
