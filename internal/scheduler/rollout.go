package scheduler

import (
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/calendar"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// DefaultWorkplaceBufferDays is the working-day workplace-activity window
// appended after each module's unit standards.
const DefaultWorkplaceBufferDays = 5

// RolloutOptions tunes plan calculation. The zero value uses the weekends-only
// calendar, calendar.DaysPerCredit and DefaultWorkplaceBufferDays.
type RolloutOptions struct {
	Calendar            calendar.Calendar
	DaysPerCredit       float64
	WorkplaceBufferDays int
}

func (o RolloutOptions) withDefaults() RolloutOptions {
	if o.DaysPerCredit <= 0 {
		o.DaysPerCredit = calendar.DaysPerCredit
	}
	if o.WorkplaceBufferDays <= 0 {
		o.WorkplaceBufferDays = DefaultWorkplaceBufferDays
	}
	return o
}

// CalculateRollout converts a start date and a curriculum into a full
// RolloutPlan. It is pure and deterministic: the same inputs always produce
// an identical plan.
func CalculateRollout(groupID string, startDate time.Time, curriculum *domain.Curriculum, opts RolloutOptions) (*domain.RolloutPlan, error) {
	if startDate.IsZero() {
		return nil, domain.NewValidationError("start_date", "start date is required")
	}
	if err := curriculum.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	// The first calendar error sticks; later steps are no-ops.
	var calErr error
	addDays := func(d time.Time, n int) time.Time {
		if calErr != nil {
			return d
		}
		out, err := opts.Calendar.AddWorkingDays(d, n)
		if err != nil {
			calErr = err
			return d
		}
		return out
	}

	start := addDays(startDate, 0)
	plan := &domain.RolloutPlan{
		GroupID:      groupID,
		CurriculumID: curriculum.ID,
		StartDate:    start,
		Modules:      make([]domain.ModuleWindow, 0, len(curriculum.Modules)),
	}

	cursor := start
	for _, m := range curriculum.Modules {
		mw := domain.ModuleWindow{
			ModuleCode:    m.Code,
			ModuleName:    m.Name,
			Credits:       m.Credits,
			StartDate:     cursor,
			UnitStandards: make([]domain.UnitStandardWindow, 0, len(m.UnitStandards)),
		}

		for _, us := range m.UnitStandards {
			duration := calendar.CreditsToDurationDays(us.Credits, opts.DaysPerCredit)
			unitStart := cursor
			// Inclusive range: a one-day unit starts and ends on the same day.
			unitEnd := addDays(unitStart, duration-1)
			next := addDays(unitEnd, 1)

			mw.UnitStandards = append(mw.UnitStandards, domain.UnitStandardWindow{
				UnitStandardID: us.ID,
				Title:          us.Title,
				Credits:        us.Credits,
				StartDate:      unitStart,
				EndDate:        unitEnd,
				SummativeDate:  unitEnd,
				AssessingDate:  next,
				DurationDays:   duration,
			})
			cursor = next
		}

		last := mw.UnitStandards[len(mw.UnitStandards)-1]
		mw.SummativeDate = last.SummativeDate
		mw.AssessingDate = last.AssessingDate

		mw.WorkplaceActivityStart = cursor
		mw.WorkplaceActivityEnd = addDays(cursor, opts.WorkplaceBufferDays-1)
		mw.EndDate = mw.WorkplaceActivityEnd
		cursor = addDays(mw.WorkplaceActivityEnd, 1)

		plan.Modules = append(plan.Modules, mw)
	}
	if calErr != nil {
		return nil, calErr
	}

	plan.EndDate = plan.Modules[len(plan.Modules)-1].WorkplaceActivityEnd
	return plan, nil
}
