package domain

import "time"

// Group is a cohort moving through the curriculum together. It owns at most
// one RolloutPlan.
type Group struct {
	ID        string
	Name      string
	StartDate time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Student is a learner enrolled in a group. EnrolledAt is the reference start
// for stall detection and the onboarding grace period.
type Student struct {
	ID         string
	GroupID    string
	Name       string
	EnrolledAt time.Time
	CreatedAt  time.Time
}
