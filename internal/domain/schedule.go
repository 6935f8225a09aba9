package domain

import (
	"fmt"
	"strings"
	"time"
)

// TemplateSlot is one recurring class slot on a given weekday.
type TemplateSlot struct {
	StartTime string // HH:MM
	EndTime   string // HH:MM
	Venue     string
	Activity  ActivityKind
}

// ScheduleTemplate is a named weekly recurrence pattern, independent of any plan.
type ScheduleTemplate struct {
	ID    string
	Name  string
	Slots map[time.Weekday][]TemplateSlot
}

// GroupSchedule binds a group to a template over a bounded date range.
type GroupSchedule struct {
	GroupID    string
	TemplateID string
	StartDate  time.Time
	EndDate    *time.Time
}

// Cadence is an explicit, deterministic weekly pattern used when a group has
// no template.
type Cadence struct {
	Weekdays  []time.Weekday
	StartTime string
	EndTime   string
	Venue     string
	Activity  ActivityKind
}

var (
	EveryWorkingDay = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	MonWedFri       = []time.Weekday{time.Monday, time.Wednesday, time.Friday}
)

// Template converts the cadence into an equivalent single-slot template.
func (c Cadence) Template() *ScheduleTemplate {
	t := &ScheduleTemplate{
		ID:    "cadence",
		Name:  "cadence",
		Slots: make(map[time.Weekday][]TemplateSlot),
	}
	for _, wd := range c.Weekdays {
		t.Slots[wd] = []TemplateSlot{{
			StartTime: c.StartTime,
			EndTime:   c.EndTime,
			Venue:     c.Venue,
			Activity:  c.Activity,
		}}
	}
	return t
}

// Validate checks the time-of-day fields and that each slot has a venue.
// Slot times are rewritten in canonical HH:MM form, so "9:00" and "09:00"
// name the same slot afterwards.
func (t *ScheduleTemplate) Validate() error {
	if t == nil || len(t.Slots) == 0 {
		return NewValidationError("slots", "template must define at least one slot")
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		slots := t.Slots[wd]
		for i := range slots {
			s := &slots[i]
			field := fmt.Sprintf("slots[%s][%d]", wd, i)
			startClock, start, err := ParseClock(s.StartTime)
			if err != nil {
				return NewValidationError(field+".start_time", err.Error())
			}
			endClock, end, err := ParseClock(s.EndTime)
			if err != nil {
				return NewValidationError(field+".end_time", err.Error())
			}
			if end <= start {
				return NewValidationError(field+".end_time", fmt.Sprintf("end %s must be after start %s", endClock, startClock))
			}
			if s.Venue == "" {
				return NewValidationError(field+".venue", "venue is required")
			}
			s.StartTime, s.EndTime = startClock, endClock
		}
	}
	return nil
}

// ClockLayout is the canonical time-of-day form stored on slots and sessions.
const ClockLayout = "15:04"

// ParseClock parses a time of day such as "9:00" or "09:00". It returns the
// canonical ClockLayout form and the minutes after midnight.
func ParseClock(s string) (string, int, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return "", 0, fmt.Errorf("invalid time of day %q (expected HH:MM)", s)
	}
	return t.Format(ClockLayout), t.Hour()*60 + t.Minute(), nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseWeekday accepts full or three-letter English weekday names in any case.
func ParseWeekday(s string) (time.Weekday, error) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("invalid weekday %q", s)
	}
	return wd, nil
}
