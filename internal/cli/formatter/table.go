package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colGap separates table columns.
const colGap = 2

// Table is an aligned text table. Columns listed in Right are right-aligned,
// which suits dates and credit counts.
type Table struct {
	Headers []string
	Rows    [][]string
	Right   []int
}

// RenderTable renders a left-aligned table.
func RenderTable(headers []string, rows [][]string) string {
	return Table{Headers: headers, Rows: rows}.Render()
}

// Render pads every column to its widest visible cell. Widths are measured
// with lipgloss so styled cells align.
func (t Table) Render() string {
	cols := len(t.Headers)
	if cols == 0 {
		return ""
	}
	right := make(map[int]bool, len(t.Right))
	for _, i := range t.Right {
		right[i] = true
	}

	widths := make([]int, cols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			if style != nil {
				cell = style(cell)
			}
			switch {
			case right[i]:
				b.WriteString(strings.Repeat(" ", pad) + cell)
			case i < cols-1:
				b.WriteString(cell + strings.Repeat(" ", pad))
			default:
				b.WriteString(cell)
			}
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(t.Headers, func(s string) string { return StyleHeader.Render(s) })
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
	for _, row := range t.Rows {
		writeRow(row, nil)
	}
	return b.String()
}
