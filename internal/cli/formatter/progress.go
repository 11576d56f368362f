package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderUsage renders a budget usage bar like [████░░░░]  45%. The bar is
// capped at full width; the percentage is printed uncapped so overspend
// stays visible.
func RenderUsage(percent float64, width int, style func(...string) string) string {
	if width < 2 {
		width = 2
	}
	frac := percent / 100
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	filled := int(frac * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", style(bar), percent)
}
