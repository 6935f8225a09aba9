package app

import (
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

type ApplyRolloutRequest struct {
	GroupID string
	// StartDate overrides the group's stored start date. The group record is
	// updated to match.
	StartDate *time.Time
}

type ApplyRolloutResponse struct {
	Plan *domain.RolloutPlan
	// Replaced is true when an existing persisted plan was overwritten.
	Replaced bool
	// Drift lists what changed relative to the replaced plan.
	Drift []domain.DriftWarning
}

type DriftReport struct {
	GroupID  string
	Current  bool
	Warnings []domain.DriftWarning
}
