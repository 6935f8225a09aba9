package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirashofficial/learnership-management-sub004/internal/app"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// FormatPlan renders a rollout plan as one row per unit standard followed by
// each module's workplace-activity window.
func FormatPlan(plan *domain.RolloutPlan) string {
	var b strings.Builder
	b.WriteString(Header("Rollout plan"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s  %s → %s  %s\n\n",
		Dim("Group"), plan.GroupID, Date(plan.StartDate), Date(plan.EndDate),
		Dim(fmt.Sprintf("(%d credits, %d modules)", plan.TotalCredits(), len(plan.Modules))))

	t := Table{
		Headers: []string{"MODULE", "UNIT", "CREDITS", "DAYS", "START", "END", "SUMMATIVE", "ASSESSING"},
		Right:   []int{2, 3},
	}
	for _, m := range plan.Modules {
		for _, us := range m.UnitStandards {
			t.Rows = append(t.Rows, []string{
				m.ModuleCode,
				us.UnitStandardID,
				strconv.Itoa(us.Credits),
				strconv.Itoa(us.DurationDays),
				Date(us.StartDate),
				Date(us.EndDate),
				Date(us.SummativeDate),
				Date(us.AssessingDate),
			})
		}
		t.Rows = append(t.Rows, []string{
			m.ModuleCode,
			StyleBlue.Render("workplace"),
			"",
			"",
			Date(m.WorkplaceActivityStart),
			Date(m.WorkplaceActivityEnd),
			Date(m.SummativeDate),
			Date(m.AssessingDate),
		})
	}
	b.WriteString(t.Render())
	return b.String()
}

// FormatApply summarises a persisted plan and what replacing it changed.
func FormatApply(resp *app.ApplyRolloutResponse) string {
	var b strings.Builder
	verb := "Applied"
	if resp.Replaced {
		verb = "Replaced"
	}
	fmt.Fprintf(&b, "%s plan for group %s: %s → %s\n", verb, resp.Plan.GroupID, Date(resp.Plan.StartDate), Date(resp.Plan.EndDate))
	if resp.Replaced && len(resp.Drift) == 0 {
		b.WriteString(Dim("No dates changed.") + "\n")
	}
	if len(resp.Drift) > 0 {
		fmt.Fprintf(&b, "%d field(s) changed:\n", len(resp.Drift))
		b.WriteString(driftTable(resp.Drift))
	}
	return b.String()
}

// FormatDrift renders a drift report. Drift is only reported, never fixed.
func FormatDrift(r *app.DriftReport) string {
	if r.Current {
		return StyleGreen.Render("✔ Plan for group "+r.GroupID+" matches the current curriculum") + "\n"
	}
	var b strings.Builder
	b.WriteString(StyleYellow.Render(fmt.Sprintf("▲ Plan for group %s has drifted (%d field(s))", r.GroupID, len(r.Warnings))))
	b.WriteString("\n")
	b.WriteString(driftTable(r.Warnings))
	b.WriteString(Dim("Re-apply the plan to adopt the new dates.") + "\n")
	return b.String()
}

func driftTable(ws []domain.DriftWarning) string {
	t := Table{Headers: []string{"FIELD", "PERSISTED", "EXPECTED"}}
	for _, w := range ws {
		t.Rows = append(t.Rows, []string{w.Path, w.Persisted, w.Expected})
	}
	return t.Render()
}
