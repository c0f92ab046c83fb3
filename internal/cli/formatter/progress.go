package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a goal-progress bar like [████░░░░]  45%.
// Green above 66%, yellow from 33%, red below.
func RenderProgress(pct float64, width int) string {
	pct = clamp01(pct)
	bar := renderBlocks(pct, width)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderBudgetBar shows how much of a daily target has been eaten. The bar
// turns yellow near the target and red once it is exceeded.
func RenderBudgetBar(consumed, target float64, width int) string {
	if target <= 0 {
		return Dim(strings.Repeat(emptyBlock, max(width, 2)))
	}
	ratio := consumed / target
	bar := renderBlocks(clamp01(ratio), width)

	style := StyleGreen
	switch {
	case ratio > 1:
		style = StyleRed
	case ratio >= 0.9:
		style = StyleYellow
	}
	return style.Render(bar)
}

func renderBlocks(pct float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := min(int(pct*float64(width)), width)
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
