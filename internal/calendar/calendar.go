// Package calendar implements working-day arithmetic for rollout planning.
// Every function is pure: results depend only on the arguments and the
// holiday predicate carried by a Calendar value.
package calendar

import (
	"fmt"
	"math"
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// DaysPerCredit converts qualification credits into working days:
// 1 credit = 10 notional hours, 8 hours = 1 working day.
const DaysPerCredit = 10.0 / 8.0

// Calendar decides which dates are working days. The zero value treats
// every weekday as a working day.
type Calendar struct {
	// Holiday reports additional non-working dates. Nil means weekends only.
	Holiday func(time.Time) bool
}

// Default is the weekends-only calendar.
var Default = Calendar{}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date is shorthand for a UTC calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// IsWorkingDay reports whether date is neither a weekend nor a holiday.
func (c Calendar) IsWorkingDay(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	if c.Holiday != nil && c.Holiday(Day(date)) {
		return false
	}
	return true
}

// MaxNonWorkingRun bounds how many consecutive non-working days a search
// walks before giving up on the holiday predicate.
const MaxNonWorkingRun = 366

// AddWorkingDays advances date by exactly n working days. With n == 0 it
// returns date itself when that is a working day, otherwise the next one.
// Negative n is treated as zero. A run of more than MaxNonWorkingRun
// non-working days is reported as a *domain.ValidationError.
func (c Calendar) AddWorkingDays(date time.Time, n int) (time.Time, error) {
	d := Day(date)
	run := 0
	for {
		if c.IsWorkingDay(d) {
			if n <= 0 {
				return d, nil
			}
			n--
			run = 0
		} else {
			run++
			if run > MaxNonWorkingRun {
				from := d.AddDate(0, 0, 1-run)
				return time.Time{}, domain.NewValidationError("calendar",
					fmt.Sprintf("no working day within %d days of %s", MaxNonWorkingRun, from.Format(domain.DateLayout)))
			}
		}
		d = d.AddDate(0, 0, 1)
	}
}

// WorkingDaysBetween counts working days in the inclusive range [from, to].
// It returns 0 when to is before from.
func (c Calendar) WorkingDaysBetween(from, to time.Time) int {
	from, to = Day(from), Day(to)
	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if c.IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// IsWorkingDay uses the Default calendar.
func IsWorkingDay(date time.Time) bool { return Default.IsWorkingDay(date) }

// AddWorkingDays uses the Default calendar, which always has working days.
func AddWorkingDays(date time.Time, n int) time.Time {
	d, _ := Default.AddWorkingDays(date, n)
	return d
}

// CreditsToDurationDays returns ceil(credits * daysPerCredit). Rounding is
// always up so a unit standard is never under-provisioned.
func CreditsToDurationDays(credits int, daysPerCredit float64) int {
	if credits <= 0 || daysPerCredit <= 0 {
		return 0
	}
	// Round before the ceiling so 8*1.25 stays 10 despite float error.
	raw := math.Round(float64(credits)*daysPerCredit*1e9) / 1e9
	return int(math.Ceil(raw))
}

// HolidaySet builds a Holiday predicate from a fixed list of dates.
func HolidaySet(dates ...time.Time) func(time.Time) bool {
	set := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		set[Day(d)] = true
	}
	return func(t time.Time) bool { return set[Day(t)] }
}
