package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/targets"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the style for a progress status.
func StatusColor(status domain.ProgressStatus) lipgloss.Style {
	switch status {
	case domain.ProgressBehind:
		return StyleRed
	case domain.ProgressAhead:
		return StyleBlue
	case domain.ProgressOnTrack:
		return StyleGreen
	default:
		return StyleDim
	}
}

// StatusIndicator returns a colored status indicator such as "● ON TRACK".
func StatusIndicator(status domain.ProgressStatus) string {
	switch status {
	case domain.ProgressBehind:
		return StyleRed.Render("● BEHIND")
	case domain.ProgressAhead:
		return StyleBlue.Render("● AHEAD")
	case domain.ProgressOnTrack:
		return StyleGreen.Render("● ON TRACK")
	default:
		return StyleDim.Render("● NOT ENOUGH DATA")
	}
}

// TierBadge labels a cutting tier; the default tier renders dim.
func TierBadge(kind targets.TierKind) string {
	switch kind {
	case targets.TierGoalDay:
		return StylePurple.Render("[GOAL DAY]")
	case targets.TierOneDayOut:
		return StyleRed.Render("[1 DAY OUT]")
	case targets.TierTwoDaysOut:
		return StyleYellow.Render("[2 DAYS OUT]")
	case targets.TierThreeDaysOut:
		return StyleYellow.Render("[3 DAYS OUT]")
	default:
		return StyleDim.Render("[" + string(kind) + "]")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
