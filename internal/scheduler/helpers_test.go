package scheduler

import (
	"fmt"
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/calendar"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// sixModuleCurriculum mirrors the shape of the default qualification:
// module credits 16, 24, 22, 26, 23, 26 (137 total).
func sixModuleCurriculum() *domain.Curriculum {
	shapes := [][]int{
		{8, 8},
		{12, 12},
		{12, 10},
		{16, 10},
		{12, 11},
		{8, 8, 10},
	}
	c := &domain.Curriculum{ID: "test-nvc", QualificationCredits: 140, RequiredCredits: 138}
	for i, credits := range shapes {
		m := domain.Module{Code: fmt.Sprintf("M%d", i+1), Name: fmt.Sprintf("Module %d", i+1)}
		for j, cr := range credits {
			m.UnitStandards = append(m.UnitStandards, domain.UnitStandard{
				ID:      fmt.Sprintf("US%d%02d", i+1, j+1),
				Title:   fmt.Sprintf("Unit %d.%d", i+1, j+1),
				Credits: cr,
			})
			m.Credits += cr
		}
		c.Modules = append(c.Modules, m)
	}
	return c
}

func singleUnitCurriculum(credits int) *domain.Curriculum {
	return &domain.Curriculum{
		ID: "single",
		Modules: []domain.Module{{
			Code:    "M1",
			Name:    "Only",
			Credits: credits,
			UnitStandards: []domain.UnitStandard{
				{ID: "US1", Title: "Only unit", Credits: credits},
			},
		}},
	}
}

func mustPlan(groupID string, start time.Time, c *domain.Curriculum) *domain.RolloutPlan {
	plan, err := CalculateRollout(groupID, start, c, RolloutOptions{})
	if err != nil {
		panic(err)
	}
	return plan
}

func mondayLectureTemplate() *domain.ScheduleTemplate {
	return &domain.ScheduleTemplate{
		ID:   "tpl-mon",
		Name: "Monday lectures",
		Slots: map[time.Weekday][]domain.TemplateSlot{
			time.Monday: {{StartTime: "09:00", EndTime: "12:00", Venue: "Lecture Room", Activity: domain.ActivityLecture}},
		},
	}
}

var d = calendar.Date

func keysOf(sessions []domain.Session) map[domain.SessionKey]bool {
	keys := make(map[domain.SessionKey]bool, len(sessions))
	for i := range sessions {
		keys[sessions[i].Key()] = true
	}
	return keys
}

func moduleAt(plan *domain.RolloutPlan, date time.Time) (*domain.ModuleWindow, bool) {
	for i := range plan.Modules {
		m := &plan.Modules[i]
		if !date.Before(m.StartDate) && !date.After(m.EndDate) {
			return m, true
		}
	}
	return nil, false
}
