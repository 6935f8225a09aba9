package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirashofficial/learnership-management-sub004/internal/app"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
	"github.com/sirashofficial/learnership-management-sub004/internal/scheduler"
)

// FormatSnapshot renders one learner's progress. target is the credit count
// the progress bar fills towards.
func FormatSnapshot(snap *domain.ProgressSnapshot, name string, target int) string {
	var lines []string
	lines = append(lines,
		fmt.Sprintf("%s  %s", Bold(name), ClassificationIndicator(snap.Classification, snap.Severity)),
		"",
		fmt.Sprintf("%-10s %s", "Earned", RenderProgress(snap.EarnedCredits, target, 24)),
		fmt.Sprintf("%-10s %s", "Expected", Credits(snap.ExpectedCredits)),
		fmt.Sprintf("%-10s %s", "Gap", Credits(snap.CreditGap)),
		fmt.Sprintf("%-10s %d", "Units", snap.UniqueUnitsPassed),
	)
	last := Dim("never")
	if snap.LastCompetentAt != nil {
		last = Date(*snap.LastCompetentAt) + " " + Dim("("+RelativeDateFrom(*snap.LastCompetentAt, snap.AsOf)+")")
	}
	lines = append(lines, fmt.Sprintf("%-10s %s", "Last pass", last))

	if len(snap.Warnings) > 0 {
		lines = append(lines, "")
		for _, w := range snap.Warnings {
			lines = append(lines, StyleYellow.Render("! ")+w.String())
		}
	}
	return RenderBox("Progress as of "+Date(snap.AsOf), strings.Join(lines, "\n")) + "\n"
}

// FormatGroupProgress renders a batch reconciliation, most urgent first.
// names maps student IDs to display names.
func FormatGroupProgress(resp *app.GroupProgressResponse, names map[string]string) string {
	var b strings.Builder
	b.WriteString(Header("Group progress"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s  %s\n\n", Dim("As of"), Date(resp.AsOf), summaryLine(resp.Counts))

	t := Table{
		Headers: []string{"STUDENT", "STATUS", "EARNED", "EXPECTED", "GAP", "LAST PASS"},
		Right:   []int{2, 3, 4},
	}
	for i := range resp.Snapshots {
		s := &resp.Snapshots[i]
		name := names[s.StudentID]
		if name == "" {
			name = s.StudentID
		}
		last := "--"
		if s.LastCompetentAt != nil {
			last = RelativeDateFrom(*s.LastCompetentAt, resp.AsOf)
		}
		t.Rows = append(t.Rows, []string{
			name,
			ClassificationIndicator(s.Classification, s.Severity),
			fmt.Sprintf("%d", s.EarnedCredits),
			Credits(s.ExpectedCredits),
			Credits(s.CreditGap),
			last,
		})
	}
	b.WriteString(t.Render())
	return b.String()
}

func summaryLine(counts map[domain.Classification]int) string {
	classes := make([]domain.Classification, 0, len(counts))
	for c := range counts {
		classes = append(classes, c)
	}
	sort.Slice(classes, func(i, j int) bool {
		return scheduler.ClassificationPriority(classes[i]) < scheduler.ClassificationPriority(classes[j])
	})
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		parts = append(parts, ClassificationStyle(c).Render(fmt.Sprintf("%s %d", c, counts[c])))
	}
	return strings.Join(parts, Dim(" · "))
}
