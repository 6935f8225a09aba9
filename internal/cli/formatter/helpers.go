package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly distance from now, in days or
// weeks.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := int(math.Round(now.Sub(t).Hours() / 24))
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days > 1 && days < 14:
		return fmt.Sprintf("%dd ago", days)
	case days >= 14:
		return fmt.Sprintf("%dw ago", days/7)
	case days == -1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %dd", -days)
	}
}

// Date formats a civil date, or "--" for the zero time.
func Date(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Format(domain.DateLayout)
}

// Credits formats a credit value without trailing zeros.
func Credits(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
