package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/weighin/internal/app"
	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/targets"
)

const budgetBarWidth = 12

// FormatTargets renders a day's targets against what was eaten, with the
// allowed weight, the weigh-in, and any calorie adjustment.
func FormatTargets(view *app.DayView, today time.Time) string {
	var b strings.Builder
	t := view.Targets
	unit := view.Profile.Unit

	fmt.Fprintf(&b, "%s  %s  %s\n\n",
		Bold(DayLabel(view.Date, today)+" "+view.Date.Format(domain.DateLayout)),
		TierBadge(t.Tier),
		Dim(DaysLabel(t.DaysRemaining)),
	)

	headers := []string{"NUTRIENT", "TARGET", "EATEN", "LEFT", ""}
	type line struct {
		name             string
		target, consumed float64
		format           func(float64) string
	}
	lines := []line{
		{"Calories", t.Calories, view.Consumed.Calories, func(v float64) string { return fmt.Sprintf("%.0f", v) }},
		{"Protein", t.ProteinG, view.Consumed.ProteinG, FormatGrams},
		{"Fat", t.FatG, view.Consumed.FatG, FormatGrams},
		{"Carbs", t.CarbG, view.Consumed.CarbG, FormatGrams},
		{"Fiber", t.FiberG, view.Consumed.FiberG, FormatGrams},
		{"Sodium", t.SodiumMg, view.Consumed.SodiumMg, FormatMg},
	}
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		left := l.target - l.consumed
		rows = append(rows, []string{
			l.name,
			l.format(l.target),
			l.format(l.consumed),
			RemainingStyled(l.format(left), left),
			RenderBudgetBar(l.consumed, l.target, budgetBarWidth),
		})
	}
	b.WriteString(RenderTableAligned(headers, rows, []bool{false, true, true, true, false}))

	b.WriteString("\n")
	fmt.Fprintf(&b, "Allowed weight  %s\n", Bold(FormatWeight(view.AllowedWeight, unit)))
	if view.WeighIn != nil {
		diff := view.WeighIn.Weight - view.AllowedWeight
		style := StyleGreen
		if domain.ToPounds(diff, unit) > targets.ProgressToleranceLB {
			style = StyleRed
		}
		fmt.Fprintf(&b, "Weigh-in        %s %s\n",
			FormatWeight(view.WeighIn.Weight, unit), style.Render("("+FormatSignedWeight(diff, unit)+")"))
	} else {
		fmt.Fprintf(&b, "Weigh-in        %s\n", Dim("not logged"))
	}

	if line := adjustmentLine(view.Adjustment, unit); line != "" {
		b.WriteString("\n" + line + "\n")
	}
	for _, w := range t.Warnings {
		b.WriteString(StyleYellow.Render("! "+w) + "\n")
	}
	b.WriteString(Dim(fmt.Sprintf("\nP %.0f / F %.0f / C %.0f kcal  (%s baseline)", t.ProteinKcal, t.FatKcal, t.CarbKcal, t.Model)))
	b.WriteString("\n")
	return b.String()
}

func adjustmentLine(adj targets.CalorieAdjustment, unit domain.WeightUnit) string {
	switch adj.Reason {
	case targets.AdjustAboveTrajectory, targets.AdjustBelowTrajectory:
		return StyleYellow.Render(fmt.Sprintf("Calories %+.0f: last weigh-in %s is %s off the allowed %s",
			adj.DeltaKcal,
			FormatWeight(adj.ActualWeight, unit),
			FormatSignedWeight(adj.Difference, unit),
			FormatWeight(adj.AllowedWeight, unit)))
	case targets.AdjustNeedsWeightLog:
		return Dim("Log a weigh-in to adjust calories to your progress.")
	case targets.AdjustOnTrack:
		return StyleGreen.Render("On track with the trajectory; no calorie adjustment.")
	case targets.AdjustPastGoal:
		return Dim("Past the goal date; set a new goal with 'weighin profile set'.")
	default:
		return ""
	}
}
