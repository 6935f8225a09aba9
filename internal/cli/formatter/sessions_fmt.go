package formatter

import (
	"fmt"
	"strings"

	"github.com/sirashofficial/learnership-management-sub004/internal/app"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

func sessionRows(sessions []domain.Session) [][]string {
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			Date(s.Date),
			s.Date.Weekday().String()[:3],
			s.StartTime + "-" + s.EndTime,
			s.Venue,
			s.ModuleLabel,
			s.Notes,
		})
	}
	return rows
}

var sessionHeaders = []string{"DATE", "DAY", "TIME", "VENUE", "MODULE", "ACTIVITY"}

// FormatSessions lists stored sessions in date order.
func FormatSessions(sessions []*domain.Session) string {
	if len(sessions) == 0 {
		return Dim("No sessions.") + "\n"
	}
	flat := make([]domain.Session, len(sessions))
	for i, s := range sessions {
		flat[i] = *s
	}
	return RenderTable(sessionHeaders, sessionRows(flat))
}

// FormatGenerate reports the sessions created by one generation run along
// with any conflicts and rejected inserts.
func FormatGenerate(resp *app.GenerateSessionsResponse) string {
	var b strings.Builder
	verb := "Created"
	if resp.DryRun {
		verb = "Would create"
	}
	fmt.Fprintf(&b, "%s %d session(s) for group %s\n", verb, len(resp.Created), resp.GroupID)
	if len(resp.Created) > 0 {
		b.WriteString(RenderTable(sessionHeaders, sessionRows(resp.Created)))
	}

	if len(resp.Conflicts) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleRed.Render(fmt.Sprintf("%d conflict(s)", len(resp.Conflicts))))
		b.WriteString("\n")
		t := Table{Headers: []string{"DATE", "START", "VENUE", "BOOKED BY"}}
		for _, c := range resp.Conflicts {
			t.Rows = append(t.Rows, []string{c.Date, c.StartTime, c.Venue, c.ConflictingGroupID})
		}
		b.WriteString(t.Render())
	}
	if len(resp.Rejected) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render(fmt.Sprintf("%d session(s) lost their slot to a concurrent writer", len(resp.Rejected))))
		b.WriteString("\n")
		for _, k := range resp.Rejected {
			fmt.Fprintf(&b, "  %s %s %s\n", k.Date, k.StartTime, k.Venue)
		}
	}
	return b.String()
}
