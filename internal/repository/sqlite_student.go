package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirashofficial/learnership-management-sub004/internal/db"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// SQLiteStudentRepo implements StudentRepo using a SQLite database.
type SQLiteStudentRepo struct {
	db db.DBTX
}

func NewSQLiteStudentRepo(conn db.DBTX) *SQLiteStudentRepo {
	return &SQLiteStudentRepo{db: conn}
}

const studentColumns = `id, group_id, name, enrolled_at, created_at`

func (r *SQLiteStudentRepo) Create(ctx context.Context, s *domain.Student) error {
	query := `INSERT INTO students (` + studentColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.GroupID,
		s.Name,
		s.EnrolledAt.Format(dateLayout),
		formatTimestamp(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting student: %w", err)
	}
	return nil
}

func (r *SQLiteStudentRepo) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = ?`
	s, err := scanStudent(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("student %s: %w", id, ErrNotFound)
	}
	return s, err
}

func (r *SQLiteStudentRepo) ListByGroup(ctx context.Context, groupID string) ([]*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE group_id = ? ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	defer rows.Close()

	var students []*domain.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating students: %w", err)
	}
	return students, nil
}

func scanStudent(row scanner) (*domain.Student, error) {
	var s domain.Student
	var enrolledAt, createdAt string
	if err := row.Scan(&s.ID, &s.GroupID, &s.Name, &enrolledAt, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning student: %w", err)
	}
	var err error
	if s.EnrolledAt, err = parseDate("enrolled_at", enrolledAt); err != nil {
		return nil, err
	}
	s.CreatedAt = parseTimestamp(createdAt)
	return &s, nil
}
