package domain

import "time"

// UnitStandardWindow is the dated delivery window for one unit standard.
type UnitStandardWindow struct {
	UnitStandardID string
	Title          string
	Credits        int
	StartDate      time.Time
	EndDate        time.Time
	SummativeDate  time.Time
	AssessingDate  time.Time
	DurationDays   int
}

// ModuleWindow is the dated window for one module, including the
// workplace-activity buffer that closes it.
type ModuleWindow struct {
	ModuleCode             string
	ModuleName             string
	Credits                int
	StartDate              time.Time
	EndDate                time.Time
	WorkplaceActivityStart time.Time
	WorkplaceActivityEnd   time.Time
	SummativeDate          time.Time
	AssessingDate          time.Time
	UnitStandards          []UnitStandardWindow
}

// RolloutPlan is a group's full calendar through the curriculum. It is
// recomputed wholesale whenever the start date changes.
type RolloutPlan struct {
	GroupID string
	// CurriculumID names the definition the plan was computed from.
	CurriculumID string
	StartDate    time.Time
	EndDate      time.Time
	Modules      []ModuleWindow
}

// TotalCredits sums module credits across the plan.
func (p *RolloutPlan) TotalCredits() int {
	total := 0
	for _, m := range p.Modules {
		total += m.Credits
	}
	return total
}

// UnitWindows flattens unit standard windows in curriculum order.
func (p *RolloutPlan) UnitWindows() []UnitStandardWindow {
	var out []UnitStandardWindow
	for _, m := range p.Modules {
		out = append(out, m.UnitStandards...)
	}
	return out
}
