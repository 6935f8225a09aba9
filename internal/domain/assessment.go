package domain

import "time"

// AssessmentFact is an externally recorded assessment outcome.
type AssessmentFact struct {
	ID             string
	StudentID      string
	UnitStandardID string
	Type           AssessmentType
	Result         AssessmentResult
	AssessedDate   time.Time
}

func (f AssessmentFact) IsCompetent() bool {
	return f.Result == ResultCompetent
}
