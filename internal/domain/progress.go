package domain

import "time"

// ProgressSnapshot is a derived, never-persisted view of a learner's
// position against the plan.
type ProgressSnapshot struct {
	StudentID         string
	AsOf              time.Time
	EarnedCredits     int
	UniqueUnitsPassed int
	ExpectedCredits   float64
	CreditGap         float64
	Classification    Classification
	Severity          Severity
	LastCompetentAt   *time.Time
	Warnings          []StaleDataWarning
}
