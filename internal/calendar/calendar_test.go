package calendar

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

func TestIsWorkingDay_Weekends(t *testing.T) {
	cases := []struct {
		date    time.Time
		working bool
	}{
		{Date(2025, 3, 14), true},  // Friday
		{Date(2025, 3, 15), false}, // Saturday
		{Date(2025, 3, 16), false}, // Sunday
		{Date(2025, 3, 17), true},  // Monday
	}
	for _, tc := range cases {
		assert.Equal(t, tc.working, IsWorkingDay(tc.date), "date=%s", tc.date.Format("2006-01-02"))
	}
}

func TestIsWorkingDay_Holiday(t *testing.T) {
	cal := Calendar{Holiday: HolidaySet(Date(2025, 3, 21))}
	assert.False(t, cal.IsWorkingDay(Date(2025, 3, 21)))
	assert.True(t, cal.IsWorkingDay(Date(2025, 3, 20)))
}

func TestAddWorkingDays_ZeroNormalizes(t *testing.T) {
	sat := Date(2025, 3, 15)
	assert.Equal(t, Date(2025, 3, 17), AddWorkingDays(sat, 0))

	wed := Date(2025, 3, 12)
	assert.Equal(t, wed, AddWorkingDays(wed, 0), "working day is returned unchanged")
}

func TestAddWorkingDays_SkipsWeekend(t *testing.T) {
	fri := Date(2025, 3, 14)
	assert.Equal(t, Date(2025, 3, 17), AddWorkingDays(fri, 1))
	assert.Equal(t, Date(2025, 3, 21), AddWorkingDays(fri, 5))
}

func TestAddWorkingDays_SkipsHoliday(t *testing.T) {
	cal := Calendar{Holiday: HolidaySet(Date(2025, 3, 17))}
	got, err := cal.AddWorkingDays(Date(2025, 3, 14), 1)
	require.NoError(t, err)
	assert.Equal(t, Date(2025, 3, 18), got)

	got, err = cal.AddWorkingDays(Date(2025, 3, 17), 0)
	require.NoError(t, err)
	assert.Equal(t, Date(2025, 3, 18), got)
}

func TestAddWorkingDays_NoWorkingDayFails(t *testing.T) {
	everyDay := Calendar{Holiday: func(time.Time) bool { return true }}
	for _, n := range []int{0, 3} {
		_, err := everyDay.AddWorkingDays(Date(2025, 3, 14), n)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve, "n=%d", n)
		assert.Equal(t, "calendar", ve.Field)
	}
}

func TestAddWorkingDays_LongClosureWithinBound(t *testing.T) {
	// A closure of 300 days still finds the first day after it.
	closed := Calendar{Holiday: func(d time.Time) bool { return d.Before(Date(2026, 1, 5)) }}
	got, err := closed.AddWorkingDays(Date(2025, 3, 10), 1)
	require.NoError(t, err)
	assert.Equal(t, Date(2026, 1, 6), got)
}

func TestAddWorkingDays_StripsTimeOfDay(t *testing.T) {
	in := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, Date(2025, 3, 13), AddWorkingDays(in, 1))
}

func TestAddWorkingDays_NeverLandsOnWeekend(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := Date(2024, 1, 1)
	for trial := 0; trial < 500; trial++ {
		start := base.AddDate(0, 0, rng.Intn(730))
		n := rng.Intn(60)
		got := AddWorkingDays(start, n)
		assert.True(t, IsWorkingDay(got), "trial %d: %s + %d landed on %s", trial, start.Format("2006-01-02"), n, got.Weekday())
		assert.Equal(t, n+1, Default.WorkingDaysBetween(AddWorkingDays(start, 0), got),
			"trial %d: inclusive span should hold n+1 working days", trial)
	}
}

func TestWorkingDaysBetween(t *testing.T) {
	assert.Equal(t, 5, Default.WorkingDaysBetween(Date(2025, 3, 10), Date(2025, 3, 16)))
	assert.Equal(t, 0, Default.WorkingDaysBetween(Date(2025, 3, 15), Date(2025, 3, 16)))
	assert.Equal(t, 0, Default.WorkingDaysBetween(Date(2025, 3, 20), Date(2025, 3, 10)))
}

func TestCreditsToDurationDays(t *testing.T) {
	cases := []struct {
		credits int
		want    int
	}{
		{1, 2},
		{4, 5},
		{8, 10},
		{10, 13},
		{16, 20},
		{0, 0},
		{-3, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CreditsToDurationDays(tc.credits, DaysPerCredit), "credits=%d", tc.credits)
	}
}
