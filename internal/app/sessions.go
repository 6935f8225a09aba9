package app

import (
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// GenerateSessionsRequest selects at most one recurrence source: an explicit
// template, an explicit cadence, or (when both are empty) the template the
// group is bound to through its GroupSchedule.
type GenerateSessionsRequest struct {
	GroupID    string
	TemplateID string
	Cadence    *domain.Cadence
	From       *time.Time
	To         *time.Time
	DryRun     bool
}

type GenerateSessionsResponse struct {
	GroupID string
	// Created is the delta of sessions persisted by this call (or that would
	// be, for a dry run).
	Created   []domain.Session
	Conflicts []domain.ConflictError
	// Rejected keys lost a concurrent race for their slot at insert time.
	Rejected []domain.SessionKey
	DryRun   bool
}
