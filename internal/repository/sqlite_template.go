package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/db"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// SQLiteTemplateRepo implements TemplateRepo. Slots are stored one row per
// (weekday, position) and replaced on every upsert.
type SQLiteTemplateRepo struct {
	db db.DBTX
}

func NewSQLiteTemplateRepo(conn db.DBTX) *SQLiteTemplateRepo {
	return &SQLiteTemplateRepo{db: conn}
}

func (r *SQLiteTemplateRepo) Upsert(ctx context.Context, t *domain.ScheduleTemplate) error {
	now := nowUTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO schedule_templates (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, updated_at = excluded.updated_at`,
		t.ID, t.Name, now, now)
	if err != nil {
		return fmt.Errorf("upserting template: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM template_slots WHERE template_id = ?`, t.ID); err != nil {
		return fmt.Errorf("clearing template slots: %w", err)
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		for i, s := range t.Slots[wd] {
			activity := s.Activity
			if activity == "" {
				activity = domain.ActivityLecture
			}
			_, err := r.db.ExecContext(ctx, `INSERT INTO template_slots
					(template_id, weekday, seq, start_time, end_time, venue, activity)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				t.ID, int(wd), i, s.StartTime, s.EndTime, s.Venue, string(activity))
			if err != nil {
				return fmt.Errorf("inserting template slot %s[%d]: %w", wd, i, err)
			}
		}
	}
	return nil
}

func (r *SQLiteTemplateRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleTemplate, error) {
	t := domain.ScheduleTemplate{Slots: make(map[time.Weekday][]domain.TemplateSlot)}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM schedule_templates WHERE id = ?`, id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("schedule template %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading template: %w", err)
	}
	if err := r.loadSlots(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SQLiteTemplateRepo) List(ctx context.Context) ([]*domain.ScheduleTemplate, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM schedule_templates ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	var templates []*domain.ScheduleTemplate
	for rows.Next() {
		t := &domain.ScheduleTemplate{Slots: make(map[time.Weekday][]domain.TemplateSlot)}
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating templates: %w", err)
	}
	rows.Close()

	// Slots are loaded after the cursor is released.
	for _, t := range templates {
		if err := r.loadSlots(ctx, t); err != nil {
			return nil, err
		}
	}
	return templates, nil
}

func (r *SQLiteTemplateRepo) loadSlots(ctx context.Context, t *domain.ScheduleTemplate) error {
	rows, err := r.db.QueryContext(ctx, `SELECT weekday, start_time, end_time, venue, activity
		FROM template_slots WHERE template_id = ? ORDER BY weekday, seq`, t.ID)
	if err != nil {
		return fmt.Errorf("listing template slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var wd int
		var s domain.TemplateSlot
		var activity string
		if err := rows.Scan(&wd, &s.StartTime, &s.EndTime, &s.Venue, &activity); err != nil {
			return fmt.Errorf("scanning template slot: %w", err)
		}
		s.Activity = domain.ActivityKind(activity)
		t.Slots[time.Weekday(wd)] = append(t.Slots[time.Weekday(wd)], s)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating template slots: %w", err)
	}
	return nil
}
