package scheduler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// DetectDrift compares a persisted plan against a fresh calculation from the
// same start date and returns one warning per differing field. An empty
// result means the persisted plan is current. The persisted plan is never
// modified.
func DetectDrift(persisted, expected *domain.RolloutPlan) []domain.DriftWarning {
	d := driftCollector{groupID: persisted.GroupID}

	if persisted.CurriculumID != "" && expected.CurriculumID != "" {
		d.str("curriculum_id", persisted.CurriculumID, expected.CurriculumID)
	}
	d.date("start_date", persisted.StartDate, expected.StartDate)
	d.date("end_date", persisted.EndDate, expected.EndDate)
	d.str("modules.count", strconv.Itoa(len(persisted.Modules)), strconv.Itoa(len(expected.Modules)))

	for i := 0; i < len(persisted.Modules) && i < len(expected.Modules); i++ {
		p, e := persisted.Modules[i], expected.Modules[i]
		prefix := fmt.Sprintf("modules[%d]", i)
		d.str(prefix+".code", p.ModuleCode, e.ModuleCode)
		d.str(prefix+".credits", strconv.Itoa(p.Credits), strconv.Itoa(e.Credits))
		d.date(prefix+".start_date", p.StartDate, e.StartDate)
		d.date(prefix+".end_date", p.EndDate, e.EndDate)
		d.date(prefix+".workplace_activity_start", p.WorkplaceActivityStart, e.WorkplaceActivityStart)
		d.date(prefix+".workplace_activity_end", p.WorkplaceActivityEnd, e.WorkplaceActivityEnd)
		d.date(prefix+".summative_date", p.SummativeDate, e.SummativeDate)
		d.date(prefix+".assessing_date", p.AssessingDate, e.AssessingDate)
		d.str(prefix+".unit_standards.count", strconv.Itoa(len(p.UnitStandards)), strconv.Itoa(len(e.UnitStandards)))

		for j := 0; j < len(p.UnitStandards) && j < len(e.UnitStandards); j++ {
			pu, eu := p.UnitStandards[j], e.UnitStandards[j]
			up := fmt.Sprintf("%s.unit_standards[%d]", prefix, j)
			d.str(up+".id", pu.UnitStandardID, eu.UnitStandardID)
			d.str(up+".duration_days", strconv.Itoa(pu.DurationDays), strconv.Itoa(eu.DurationDays))
			d.date(up+".start_date", pu.StartDate, eu.StartDate)
			d.date(up+".end_date", pu.EndDate, eu.EndDate)
			d.date(up+".summative_date", pu.SummativeDate, eu.SummativeDate)
			d.date(up+".assessing_date", pu.AssessingDate, eu.AssessingDate)
		}
	}
	return d.warnings
}

type driftCollector struct {
	groupID  string
	warnings []domain.DriftWarning
}

func (d *driftCollector) str(path, persisted, expected string) {
	if persisted == expected {
		return
	}
	d.warnings = append(d.warnings, domain.DriftWarning{
		GroupID:   d.groupID,
		Path:      path,
		Persisted: persisted,
		Expected:  expected,
	})
}

func (d *driftCollector) date(path string, persisted, expected time.Time) {
	d.str(path, persisted.Format(domain.DateLayout), expected.Format(domain.DateLayout))
}
