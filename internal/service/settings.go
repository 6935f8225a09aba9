package service

import (
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/calendar"
	"github.com/sirashofficial/learnership-management-sub004/internal/scheduler"
)

// Settings carries the tunables shared by the scheduling services. The zero
// value is usable: it plans on the weekends-only calendar with default
// thresholds.
type Settings struct {
	Calendar            calendar.Calendar
	WorkplaceBufferDays int
	Thresholds          scheduler.Thresholds
	ReconcileWorkers    int
	// Locks must be shared by every service that writes plans or sessions.
	Locks *GroupLocks
	// Now defaults to time.Now. Tests pin it.
	Now func() time.Time
}

func (s Settings) withDefaults() Settings {
	if s.ReconcileWorkers <= 0 {
		s.ReconcileWorkers = 4
	}
	if s.Locks == nil {
		s.Locks = NewGroupLocks()
	}
	if s.Now == nil {
		s.Now = time.Now
	}
	return s
}

func (s Settings) rolloutOptions() scheduler.RolloutOptions {
	return scheduler.RolloutOptions{
		Calendar:            s.Calendar,
		WorkplaceBufferDays: s.WorkplaceBufferDays,
	}
}

func (s Settings) today() time.Time {
	return calendar.Day(s.Now().UTC())
}
