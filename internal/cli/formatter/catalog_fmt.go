package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// FormatCurriculum lists modules and unit standards with their credits.
func FormatCurriculum(c *domain.Curriculum) string {
	var b strings.Builder
	b.WriteString(Header(c.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s  %s %d  %s %d  %s %d\n\n",
		Dim("id"), c.ID,
		Dim("total"), c.TotalCredits(),
		Dim("qualification"), c.QualificationCredits,
		Dim("required"), c.RequiredCredits)

	t := Table{Headers: []string{"MODULE", "UNIT", "TITLE", "CREDITS"}, Right: []int{3}}
	for _, m := range c.Modules {
		t.Rows = append(t.Rows, []string{Bold(m.Code), "", m.Name, Bold(strconv.Itoa(m.Credits))})
		for _, us := range m.UnitStandards {
			t.Rows = append(t.Rows, []string{"", us.ID, us.Title, strconv.Itoa(us.Credits)})
		}
	}
	b.WriteString(t.Render())
	return b.String()
}

func FormatGroups(groups []*domain.Group) string {
	if len(groups) == 0 {
		return Dim("No groups.") + "\n"
	}
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{TruncID(g.ID), g.Name, Date(g.StartDate)})
	}
	return RenderTable([]string{"ID", "NAME", "START"}, rows)
}

func FormatStudents(students []*domain.Student) string {
	if len(students) == 0 {
		return Dim("No students.") + "\n"
	}
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{TruncID(s.ID), s.Name, Date(s.EnrolledAt)})
	}
	return RenderTable([]string{"ID", "NAME", "ENROLLED"}, rows)
}

// FormatTemplates lists templates with their weekly slots in weekday order.
func FormatTemplates(templates []*domain.ScheduleTemplate) string {
	if len(templates) == 0 {
		return Dim("No templates.") + "\n"
	}
	t := Table{Headers: []string{"TEMPLATE", "DAY", "TIME", "VENUE", "ACTIVITY"}}
	for _, tpl := range templates {
		first := true
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			for _, s := range tpl.Slots[wd] {
				label := ""
				if first {
					label = tpl.ID
					first = false
				}
				t.Rows = append(t.Rows, []string{label, wd.String()[:3], s.StartTime + "-" + s.EndTime, s.Venue, string(s.Activity)})
			}
		}
	}
	return t.Render()
}
