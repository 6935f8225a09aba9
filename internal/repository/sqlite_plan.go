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

// SQLitePlanRepo implements PlanRepo. A plan spans three tables; Upsert
// issues several statements and should run inside a UnitOfWork.
type SQLitePlanRepo struct {
	db db.DBTX
}

func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Upsert(ctx context.Context, plan *domain.RolloutPlan) error {
	if err := r.Delete(ctx, plan.GroupID); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rollout_plans (group_id, curriculum_id, start_date, end_date, computed_at) VALUES (?, ?, ?, ?, ?)`,
		plan.GroupID, plan.CurriculumID, plan.StartDate.Format(dateLayout), plan.EndDate.Format(dateLayout), nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting rollout plan: %w", err)
	}

	for i, m := range plan.Modules {
		_, err := r.db.ExecContext(ctx, `INSERT INTO module_windows (
				group_id, seq, module_code, module_name, credits, start_date, end_date,
				workplace_activity_start, workplace_activity_end, summative_date, assessing_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			plan.GroupID, i, m.ModuleCode, m.ModuleName, m.Credits,
			m.StartDate.Format(dateLayout),
			m.EndDate.Format(dateLayout),
			m.WorkplaceActivityStart.Format(dateLayout),
			m.WorkplaceActivityEnd.Format(dateLayout),
			m.SummativeDate.Format(dateLayout),
			m.AssessingDate.Format(dateLayout),
		)
		if err != nil {
			return fmt.Errorf("inserting module window %s: %w", m.ModuleCode, err)
		}

		for j, us := range m.UnitStandards {
			_, err := r.db.ExecContext(ctx, `INSERT INTO unit_standard_windows (
					group_id, module_seq, seq, unit_standard_id, title, credits, start_date, end_date,
					summative_date, assessing_date, duration_days)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				plan.GroupID, i, j, us.UnitStandardID, us.Title, us.Credits,
				us.StartDate.Format(dateLayout),
				us.EndDate.Format(dateLayout),
				us.SummativeDate.Format(dateLayout),
				us.AssessingDate.Format(dateLayout),
				us.DurationDays,
			)
			if err != nil {
				return fmt.Errorf("inserting unit standard window %s: %w", us.UnitStandardID, err)
			}
		}
	}
	return nil
}

func (r *SQLitePlanRepo) Get(ctx context.Context, groupID string) (*domain.RolloutPlan, error) {
	var plan domain.RolloutPlan
	var start, end string
	err := r.db.QueryRowContext(ctx,
		`SELECT group_id, curriculum_id, start_date, end_date FROM rollout_plans WHERE group_id = ?`, groupID,
	).Scan(&plan.GroupID, &plan.CurriculumID, &start, &end)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("rollout plan for group %s: %w", groupID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading rollout plan: %w", err)
	}
	if plan.StartDate, err = parseDate("start_date", start); err != nil {
		return nil, err
	}
	if plan.EndDate, err = parseDate("end_date", end); err != nil {
		return nil, err
	}

	if plan.Modules, err = r.loadModules(ctx, groupID); err != nil {
		return nil, err
	}
	units, err := r.loadUnits(ctx, groupID)
	if err != nil {
		return nil, err
	}
	for i := range plan.Modules {
		plan.Modules[i].UnitStandards = units[i]
	}
	return &plan, nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, groupID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM rollout_plans WHERE group_id = ?`, groupID); err != nil {
		return fmt.Errorf("deleting rollout plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) loadModules(ctx context.Context, groupID string) ([]domain.ModuleWindow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT module_code, module_name, credits, start_date, end_date,
			workplace_activity_start, workplace_activity_end, summative_date, assessing_date
		FROM module_windows WHERE group_id = ? ORDER BY seq`, groupID)
	if err != nil {
		return nil, fmt.Errorf("listing module windows: %w", err)
	}
	defer rows.Close()

	var modules []domain.ModuleWindow
	for rows.Next() {
		var m domain.ModuleWindow
		var dates [6]string
		if err := rows.Scan(&m.ModuleCode, &m.ModuleName, &m.Credits,
			&dates[0], &dates[1], &dates[2], &dates[3], &dates[4], &dates[5]); err != nil {
			return nil, fmt.Errorf("scanning module window: %w", err)
		}
		targets := []*time.Time{
			&m.StartDate, &m.EndDate, &m.WorkplaceActivityStart, &m.WorkplaceActivityEnd, &m.SummativeDate, &m.AssessingDate,
		}
		for k, s := range dates {
			if *targets[k], err = parseDate("module window date", s); err != nil {
				return nil, err
			}
		}
		modules = append(modules, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating module windows: %w", err)
	}
	return modules, nil
}

// loadUnits returns unit standard windows keyed by module sequence.
func (r *SQLitePlanRepo) loadUnits(ctx context.Context, groupID string) (map[int][]domain.UnitStandardWindow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT module_seq, unit_standard_id, title, credits, start_date, end_date,
			summative_date, assessing_date, duration_days
		FROM unit_standard_windows WHERE group_id = ? ORDER BY module_seq, seq`, groupID)
	if err != nil {
		return nil, fmt.Errorf("listing unit standard windows: %w", err)
	}
	defer rows.Close()

	units := make(map[int][]domain.UnitStandardWindow)
	for rows.Next() {
		var moduleSeq int
		var u domain.UnitStandardWindow
		var dates [4]string
		if err := rows.Scan(&moduleSeq, &u.UnitStandardID, &u.Title, &u.Credits,
			&dates[0], &dates[1], &dates[2], &dates[3], &u.DurationDays); err != nil {
			return nil, fmt.Errorf("scanning unit standard window: %w", err)
		}
		targets := []*time.Time{&u.StartDate, &u.EndDate, &u.SummativeDate, &u.AssessingDate}
		for k, s := range dates {
			if *targets[k], err = parseDate("unit standard window date", s); err != nil {
				return nil, err
			}
		}
		units[moduleSeq] = append(units[moduleSeq], u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating unit standard windows: %w", err)
	}
	return units, nil
}
