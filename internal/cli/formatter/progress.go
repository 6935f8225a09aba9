package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a credit bar like [████░░░░] 45/138.
// Green from two thirds of the target, yellow from one third, red below.
func RenderProgress(earned, target, width int) string {
	if width < 2 {
		width = 2
	}
	pct := 0.0
	if target > 0 {
		pct = float64(earned) / float64(target)
	}
	pct = min(max(pct, 0), 1)

	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), earned, target)
}
