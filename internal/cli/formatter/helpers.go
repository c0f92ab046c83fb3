package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// DayLabel names date relative to today: "Today", "Yesterday", "Tomorrow",
// or "Mon, Jan 2".
func DayLabel(date, today time.Time) string {
	switch domain.DaysBetween(domain.Day(today), domain.Day(date)) {
	case 0:
		return "Today"
	case -1:
		return "Yesterday"
	case 1:
		return "Tomorrow"
	default:
		return date.Format("Mon, Jan 2")
	}
}

// DaysLabel renders a days-remaining count.
func DaysLabel(days int) string {
	switch {
	case days == 0:
		return "goal day"
	case days == 1:
		return "1 day left"
	case days < 0:
		return fmt.Sprintf("%d days past goal", -days)
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

// FormatWeight renders a weight with one decimal and its unit.
func FormatWeight(w float64, unit domain.WeightUnit) string {
	if unit == "" {
		unit = domain.UnitPounds
	}
	return fmt.Sprintf("%.1f %s", w, unit)
}

// FormatSignedWeight renders a weight difference with an explicit sign.
func FormatSignedWeight(w float64, unit domain.WeightUnit) string {
	if unit == "" {
		unit = domain.UnitPounds
	}
	return fmt.Sprintf("%+.1f %s", w, unit)
}

func FormatKcal(kcal float64) string {
	return fmt.Sprintf("%.0f kcal", kcal)
}

func FormatGrams(g float64) string {
	return fmt.Sprintf("%.0f g", g)
}

func FormatMg(mg float64) string {
	return fmt.Sprintf("%.0f mg", mg)
}

// RemainingStyled renders a remaining amount, red once the target is exceeded.
func RemainingStyled(text string, remaining float64) string {
	if remaining < 0 {
		return StyleRed.Render(text)
	}
	return StyleGreen.Render(text)
}

// TruncID shortens a UUID for display.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Truncate shortens s to n runes with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 4 {
		return s
	}
	return string(r[:n-3]) + "..."
}
