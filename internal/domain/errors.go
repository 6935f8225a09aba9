package domain

import (
	"errors"
	"fmt"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports malformed or impossible input. It is never retried.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConflictError records two groups claiming the same (date, start, venue)
// slot. Conflicts are collected, not raised one at a time.
type ConflictError struct {
	Date               string
	StartTime          string
	Venue              string
	GroupID            string
	ConflictingGroupID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s %s at %q requested by group %s is booked by group %s",
		e.Date, e.StartTime, e.Venue, e.GroupID, e.ConflictingGroupID)
}

// DriftWarning flags a persisted plan field that no longer matches a fresh
// calculation. It is surfaced for review and never auto-corrected.
type DriftWarning struct {
	GroupID   string
	Path      string
	Persisted string
	Expected  string
}

func (w DriftWarning) String() string {
	return fmt.Sprintf("drift: group %s %s persisted=%s expected=%s", w.GroupID, w.Path, w.Persisted, w.Expected)
}

type StaleDataCode string

const (
	StaleAsOfBeforePlan   StaleDataCode = "AS_OF_BEFORE_PLAN"
	StaleFactOutsidePlan  StaleDataCode = "FACT_OUTSIDE_PLAN"
	StaleFactAfterAsOf    StaleDataCode = "FACT_AFTER_AS_OF"
	StaleUnknownUnit      StaleDataCode = "UNKNOWN_UNIT_STANDARD"
	StaleFactOtherStudent StaleDataCode = "FACT_FOR_OTHER_STUDENT"
)

// StaleDataWarning is a non-fatal reconciliation anomaly.
type StaleDataWarning struct {
	StudentID string
	Code      StaleDataCode
	Message   string
}

func (w StaleDataWarning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}
