package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/db"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// SQLiteAssessmentRepo implements AssessmentRepo using a SQLite database.
type SQLiteAssessmentRepo struct {
	db db.DBTX
}

func NewSQLiteAssessmentRepo(conn db.DBTX) *SQLiteAssessmentRepo {
	return &SQLiteAssessmentRepo{db: conn}
}

func (r *SQLiteAssessmentRepo) Create(ctx context.Context, f *domain.AssessmentFact) error {
	typ := f.Type
	if typ == "" {
		typ = domain.AssessmentSummative
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO assessments
			(id, student_id, unit_standard_id, type, result, assessed_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.StudentID, f.UnitStandardID, string(typ), string(f.Result),
		f.AssessedDate.Format(dateLayout), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting assessment: %w", err)
	}
	return nil
}

// FactsFor returns the student's assessment history in date order.
func (r *SQLiteAssessmentRepo) FactsFor(ctx context.Context, studentID string) ([]domain.AssessmentFact, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, student_id, unit_standard_id, type, result, assessed_date
		FROM assessments WHERE student_id = ? ORDER BY assessed_date, id`, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	defer rows.Close()

	var facts []domain.AssessmentFact
	for rows.Next() {
		var f domain.AssessmentFact
		var typ, result, assessed string
		if err := rows.Scan(&f.ID, &f.StudentID, &f.UnitStandardID, &typ, &result, &assessed); err != nil {
			return nil, fmt.Errorf("scanning assessment: %w", err)
		}
		f.Type = domain.AssessmentType(typ)
		f.Result = domain.AssessmentResult(result)
		if f.AssessedDate, err = parseDate("assessed_date", assessed); err != nil {
			return nil, err
		}
		facts = append(facts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assessments: %w", err)
	}
	return facts, nil
}
