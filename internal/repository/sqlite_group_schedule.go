package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirashofficial/learnership-management-sub004/internal/db"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// SQLiteGroupScheduleRepo implements GroupScheduleRepo. A group is bound to
// at most one template at a time.
type SQLiteGroupScheduleRepo struct {
	db db.DBTX
}

func NewSQLiteGroupScheduleRepo(conn db.DBTX) *SQLiteGroupScheduleRepo {
	return &SQLiteGroupScheduleRepo{db: conn}
}

func (r *SQLiteGroupScheduleRepo) Upsert(ctx context.Context, gs *domain.GroupSchedule) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO group_schedules (group_id, template_id, start_date, end_date)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(group_id) DO UPDATE SET
			template_id = excluded.template_id,
			start_date = excluded.start_date,
			end_date = excluded.end_date`,
		gs.GroupID, gs.TemplateID, gs.StartDate.Format(dateLayout), nullableTimeToString(gs.EndDate, dateLayout))
	if err != nil {
		return fmt.Errorf("upserting group schedule: %w", err)
	}
	return nil
}

func (r *SQLiteGroupScheduleRepo) GetByGroup(ctx context.Context, groupID string) (*domain.GroupSchedule, error) {
	var gs domain.GroupSchedule
	var start string
	var end sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT group_id, template_id, start_date, end_date FROM group_schedules WHERE group_id = ?`, groupID,
	).Scan(&gs.GroupID, &gs.TemplateID, &start, &end)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("schedule for group %s: %w", groupID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading group schedule: %w", err)
	}
	if gs.StartDate, err = parseDate("start_date", start); err != nil {
		return nil, err
	}
	gs.EndDate = parseNullableTime(end, dateLayout)
	return &gs, nil
}
