package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/db"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo. The sessions table carries a
// UNIQUE(date, start_time, venue) constraint that backs the expander's
// in-memory conflict check.
type SQLiteSessionRepo struct {
	db db.DBTX
}

func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

const sessionColumns = `id, group_id, date, start_time, end_time, venue, module_label, notes, created_at`

func (r *SQLiteSessionRepo) ExistingKeys(ctx context.Context, groupID string, from, to time.Time) (map[domain.SessionKey]bool, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, start_time, venue FROM sessions WHERE group_id = ? AND date BETWEEN ? AND ?`,
		groupID, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing existing session keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[domain.SessionKey]bool)
	for rows.Next() {
		k := domain.SessionKey{GroupID: groupID}
		if err := rows.Scan(&k.Date, &k.StartTime, &k.Venue); err != nil {
			return nil, fmt.Errorf("scanning session key: %w", err)
		}
		keys[k] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session keys: %w", err)
	}
	return keys, nil
}

func (r *SQLiteSessionRepo) BookedSlots(ctx context.Context, from, to time.Time, excludeGroupID string) (map[domain.SlotKey]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, start_time, venue, group_id FROM sessions WHERE group_id != ? AND date BETWEEN ? AND ?`,
		excludeGroupID, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing booked slots: %w", err)
	}
	defer rows.Close()

	booked := make(map[domain.SlotKey]string)
	for rows.Next() {
		var k domain.SlotKey
		var owner string
		if err := rows.Scan(&k.Date, &k.StartTime, &k.Venue, &owner); err != nil {
			return nil, fmt.Errorf("scanning booked slot: %w", err)
		}
		booked[k] = owner
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating booked slots: %w", err)
	}
	return booked, nil
}

// InsertMany inserts each session, skipping any whose slot is already taken.
// A skipped session is reported in Rejected rather than failing the batch.
func (r *SQLiteSessionRepo) InsertMany(ctx context.Context, sessions []domain.Session) (InsertResult, error) {
	var res InsertResult
	query := `INSERT OR IGNORE INTO sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, s := range sessions {
		if err := canonicalTimes(&s); err != nil {
			return res, err
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = time.Now().UTC()
		}
		out, err := r.db.ExecContext(ctx, query,
			s.ID,
			s.GroupID,
			s.Date.Format(dateLayout),
			s.StartTime,
			s.EndTime,
			s.Venue,
			s.ModuleLabel,
			s.Notes,
			formatTimestamp(s.CreatedAt),
		)
		if err != nil {
			return res, fmt.Errorf("inserting session %s %s %s: %w", s.Date.Format(dateLayout), s.StartTime, s.Venue, err)
		}
		n, err := out.RowsAffected()
		if err != nil {
			return res, fmt.Errorf("reading rows affected: %w", err)
		}
		if n == 0 {
			res.Rejected = append(res.Rejected, s.Key())
			continue
		}
		res.Inserted = append(res.Inserted, s)
	}
	return res, nil
}

// canonicalTimes zero-pads the session's times so the slot key matches
// however the caller spelled them.
func canonicalTimes(s *domain.Session) error {
	start, _, err := domain.ParseClock(s.StartTime)
	if err != nil {
		return domain.NewValidationError("start_time", err.Error())
	}
	end, _, err := domain.ParseClock(s.EndTime)
	if err != nil {
		return domain.NewValidationError("end_time", err.Error())
	}
	s.StartTime, s.EndTime = start, end
	return nil
}

func (r *SQLiteSessionRepo) ListByGroup(ctx context.Context, groupID string, from, to *time.Time) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE group_id = ?`
	args := []any{groupID}
	if from != nil {
		query += ` AND date >= ?`
		args = append(args, from.Format(dateLayout))
	}
	if to != nil {
		query += ` AND date <= ?`
		args = append(args, to.Format(dateLayout))
	}
	query += ` ORDER BY date, start_time, venue`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		var date, createdAt string
		if err := rows.Scan(&s.ID, &s.GroupID, &date, &s.StartTime, &s.EndTime, &s.Venue,
			&s.ModuleLabel, &s.Notes, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		if s.Date, err = parseDate("date", date); err != nil {
			return nil, err
		}
		s.CreatedAt = parseTimestamp(createdAt)
		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}
