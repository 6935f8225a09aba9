package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/calendar"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// Thresholds parameterise learner classification. Zero fields take the
// defaults from DefaultThresholds.
type Thresholds struct {
	// NoActivityDays: with no competent result at all, a learner is stalled
	// once this many days have passed since their reference start.
	NoActivityDays int
	// StalledMediumDays and StalledHighDays bound the age of the most recent
	// competent result.
	StalledMediumDays int
	StalledHighDays   int
	AtRiskMediumGap   float64
	AtRiskHighGap     float64
	BehindGap         float64
	// OnboardingMonths suppresses gap-based classification for new learners.
	OnboardingMonths int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		NoActivityDays:    30,
		StalledMediumDays: 30,
		StalledHighDays:   60,
		AtRiskMediumGap:   10,
		AtRiskHighGap:     20,
		BehindGap:         5,
		OnboardingMonths:  2,
	}
}

func (t Thresholds) withDefaults() Thresholds {
	d := DefaultThresholds()
	if t.NoActivityDays <= 0 {
		t.NoActivityDays = d.NoActivityDays
	}
	if t.StalledMediumDays <= 0 {
		t.StalledMediumDays = d.StalledMediumDays
	}
	if t.StalledHighDays <= 0 {
		t.StalledHighDays = d.StalledHighDays
	}
	if t.AtRiskMediumGap <= 0 {
		t.AtRiskMediumGap = d.AtRiskMediumGap
	}
	if t.AtRiskHighGap <= 0 {
		t.AtRiskHighGap = d.AtRiskHighGap
	}
	if t.BehindGap <= 0 {
		t.BehindGap = d.BehindGap
	}
	if t.OnboardingMonths <= 0 {
		t.OnboardingMonths = d.OnboardingMonths
	}
	return t
}

type ReconcileInput struct {
	StudentID  string
	Plan       *domain.RolloutPlan
	Curriculum *domain.Curriculum
	Facts      []domain.AssessmentFact
	AsOf       time.Time
	// EnrolledAt is the learner's reference start. Nil falls back to the
	// plan start date.
	EnrolledAt *time.Time
	Thresholds Thresholds
	Calendar   calendar.Calendar
}

// Reconcile derives a learner's progress snapshot from the plan, the
// curriculum and the current assessment facts. It is pure: identical inputs
// always produce an identical snapshot and nothing passed in is modified.
func Reconcile(in ReconcileInput) (domain.ProgressSnapshot, error) {
	if in.Plan == nil || len(in.Plan.Modules) == 0 {
		return domain.ProgressSnapshot{}, domain.NewValidationError("plan", "a rollout plan is required")
	}
	if in.Curriculum == nil {
		return domain.ProgressSnapshot{}, domain.NewValidationError("curriculum", "a curriculum is required")
	}
	if in.AsOf.IsZero() {
		return domain.ProgressSnapshot{}, domain.NewValidationError("as_of", "as-of date is required")
	}

	th := in.Thresholds.withDefaults()
	asOf := calendar.Day(in.AsOf)
	snap := domain.ProgressSnapshot{StudentID: in.StudentID, AsOf: asOf}

	if asOf.Before(in.Plan.StartDate) {
		snap.Warnings = append(snap.Warnings, domain.StaleDataWarning{
			StudentID: in.StudentID,
			Code:      domain.StaleAsOfBeforePlan,
			Message:   fmt.Sprintf("as-of %s is before plan start %s", asOf.Format(domain.DateLayout), in.Plan.StartDate.Format(domain.DateLayout)),
		})
	}

	earned, units, last, warnings := earnedCredits(in, asOf)
	snap.EarnedCredits = earned
	snap.UniqueUnitsPassed = units
	snap.LastCompetentAt = last
	snap.Warnings = append(snap.Warnings, warnings...)

	snap.ExpectedCredits = roundCredits(ExpectedCredits(in.Plan, asOf, in.Calendar))
	snap.CreditGap = roundCredits(snap.ExpectedCredits - float64(earned))

	ref := in.Plan.StartDate
	if in.EnrolledAt != nil {
		ref = calendar.Day(*in.EnrolledAt)
	}
	snap.Classification, snap.Severity = classify(th, asOf, ref, last, snap.CreditGap)
	return snap, nil
}

// earnedCredits dedupes competent facts per unit standard and sums their
// credits, clamped to the curriculum's credit cap.
func earnedCredits(in ReconcileInput, asOf time.Time) (int, int, *time.Time, []domain.StaleDataWarning) {
	credits := in.Curriculum.UnitCredits()
	passed := make(map[string]bool)
	var last *time.Time
	var warnings []domain.StaleDataWarning
	warn := func(code domain.StaleDataCode, msg string) {
		warnings = append(warnings, domain.StaleDataWarning{StudentID: in.StudentID, Code: code, Message: msg})
	}

	total := 0
	for _, f := range in.Facts {
		if in.StudentID != "" && f.StudentID != "" && f.StudentID != in.StudentID {
			warn(domain.StaleFactOtherStudent, fmt.Sprintf("fact %s belongs to student %s", f.ID, f.StudentID))
			continue
		}
		if !f.IsCompetent() {
			continue
		}
		assessed := calendar.Day(f.AssessedDate)
		if assessed.After(asOf) {
			warn(domain.StaleFactAfterAsOf, fmt.Sprintf("unit %s assessed %s after as-of date", f.UnitStandardID, assessed.Format(domain.DateLayout)))
			continue
		}
		c, known := credits[f.UnitStandardID]
		if !known {
			warn(domain.StaleUnknownUnit, fmt.Sprintf("unit %s is not part of curriculum %s", f.UnitStandardID, in.Curriculum.ID))
			continue
		}
		if assessed.Before(in.Plan.StartDate) || assessed.After(in.Plan.EndDate) {
			warn(domain.StaleFactOutsidePlan, fmt.Sprintf("unit %s assessed %s outside plan range", f.UnitStandardID, assessed.Format(domain.DateLayout)))
		}
		if last == nil || assessed.After(*last) {
			d := assessed
			last = &d
		}
		if passed[f.UnitStandardID] {
			continue
		}
		passed[f.UnitStandardID] = true
		total += c
	}

	if limit := in.Curriculum.CreditCap(); total > limit {
		total = limit
	}
	if total < 0 {
		total = 0
	}
	return total, len(passed), last, warnings
}

// ExpectedCredits is the credit count the plan implies by asOf: credits of
// every unit standard whose window has ended, plus a working-day linear
// fraction of the unit in progress.
func ExpectedCredits(plan *domain.RolloutPlan, asOf time.Time, cal calendar.Calendar) float64 {
	asOf = calendar.Day(asOf)
	if asOf.Before(plan.StartDate) {
		return 0
	}
	if asOf.After(plan.EndDate) {
		return float64(plan.TotalCredits())
	}

	var expected float64
	for _, uw := range plan.UnitWindows() {
		switch {
		case uw.EndDate.Before(asOf):
			expected += float64(uw.Credits)
		case !asOf.Before(uw.StartDate) && uw.DurationDays > 0:
			elapsed := cal.WorkingDaysBetween(uw.StartDate, asOf.AddDate(0, 0, -1))
			expected += float64(uw.Credits) * float64(elapsed) / float64(uw.DurationDays)
		}
	}
	return expected
}

func classify(th Thresholds, asOf, ref time.Time, last *time.Time, gap float64) (domain.Classification, domain.Severity) {
	if last == nil {
		if daysBetween(ref, asOf) > th.NoActivityDays {
			return domain.ClassStalled, domain.SeverityHigh
		}
	} else {
		idle := daysBetween(*last, asOf)
		switch {
		case idle > th.StalledHighDays:
			return domain.ClassStalled, domain.SeverityHigh
		case idle > th.StalledMediumDays:
			return domain.ClassStalled, domain.SeverityMedium
		}
	}

	// New learners are not judged on credit gap.
	if asOf.Before(ref.AddDate(0, th.OnboardingMonths, 0)) {
		return domain.ClassOnTrack, domain.SeverityNone
	}

	switch {
	case gap > th.AtRiskHighGap:
		return domain.ClassAtRisk, domain.SeverityHigh
	case gap > th.AtRiskMediumGap:
		return domain.ClassAtRisk, domain.SeverityMedium
	case gap > th.BehindGap:
		return domain.ClassBehind, domain.SeverityLow
	default:
		return domain.ClassOnTrack, domain.SeverityNone
	}
}

func daysBetween(from, to time.Time) int {
	return int(math.Floor(calendar.Day(to).Sub(calendar.Day(from)).Hours() / 24))
}

func roundCredits(v float64) float64 {
	return math.Round(v*100) / 100
}
