package domain

import "time"

// Session is a single class occurrence. (GroupID, Date, StartTime, Venue)
// identifies it.
type Session struct {
	ID          string
	GroupID     string
	Date        time.Time
	StartTime   string
	EndTime     string
	Venue       string
	ModuleLabel string
	Notes       string
	CreatedAt   time.Time
}

// SessionKey is the identity tuple of a session.
type SessionKey struct {
	GroupID   string
	Date      string // YYYY-MM-DD
	StartTime string
	Venue     string
}

// SlotKey is a bookable (date, start, venue) slot regardless of group.
type SlotKey struct {
	Date      string
	StartTime string
	Venue     string
}

func (s *Session) Key() SessionKey {
	return SessionKey{GroupID: s.GroupID, Date: s.Date.Format(DateLayout), StartTime: s.StartTime, Venue: s.Venue}
}

func (s *Session) Slot() SlotKey {
	return SlotKey{Date: s.Date.Format(DateLayout), StartTime: s.StartTime, Venue: s.Venue}
}

// DateLayout is the canonical civil date format used across the module.
const DateLayout = "2006-01-02"
