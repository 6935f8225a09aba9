package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
)

var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StyleOrange lipgloss.Style
	StyleDim    lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

func init() { setStyles(true) }

func setStyles(color bool) {
	plain := lipgloss.NewStyle()
	if !color {
		StyleGreen, StyleYellow, StyleRed, StyleBlue, StyleOrange, StyleDim = plain, plain, plain, plain, plain, plain
		StyleHeader = plain.Bold(true)
		StyleBold = plain.Bold(true)
		return
	}
	StyleGreen = plain.Foreground(ColorGreen)
	StyleYellow = plain.Foreground(ColorYellow)
	StyleRed = plain.Foreground(ColorRed)
	StyleBlue = plain.Foreground(ColorBlue)
	StyleOrange = plain.Foreground(ColorOrange)
	StyleDim = plain.Foreground(ColorDim)
	StyleHeader = plain.Foreground(ColorOrange).Bold(true)
	StyleBold = plain.Foreground(ColorFg).Bold(true)
}

// DisableColor switches every style to plain text. Call it once at startup
// when output is not a terminal.
func DisableColor() { setStyles(false) }

// ClassificationStyle maps a learner classification to its colour.
func ClassificationStyle(c domain.Classification) lipgloss.Style {
	switch c {
	case domain.ClassStalled:
		return StyleRed
	case domain.ClassAtRisk:
		return StyleOrange
	case domain.ClassBehind:
		return StyleYellow
	case domain.ClassOnTrack:
		return StyleGreen
	default:
		return StyleDim
	}
}

// ClassificationIndicator renders e.g. "● AT RISK (HIGH)".
func ClassificationIndicator(c domain.Classification, s domain.Severity) string {
	label := "● " + strings.ReplaceAll(string(c), "_", " ")
	if s != domain.SeverityNone {
		label += fmt.Sprintf(" (%s)", s)
	}
	return ClassificationStyle(c).Render(label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
