package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/weighin/internal/domain"
)

func FormatProfile(p *domain.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User          %s\n", Bold(p.UserID))
	fmt.Fprintf(&b, "Current       %s\n", FormatWeight(p.CurrentWeight, p.Unit))
	fmt.Fprintf(&b, "Target        %s %s\n", FormatWeight(p.TargetWeight, p.Unit),
		Dim("("+FormatSignedWeight(p.TargetWeight-p.CurrentWeight, p.Unit)+")"))
	fmt.Fprintf(&b, "Start date    %s\n", p.StartDate.Format(domain.DateLayout))
	fmt.Fprintf(&b, "Target date   %s %s\n", p.TargetDate.Format(domain.DateLayout),
		Dim(fmt.Sprintf("(%d days)", domain.DaysBetween(p.StartDate, p.TargetDate))))
	fmt.Fprintf(&b, "Height        %.1f in\n", p.HeightIn)
	if p.BodyFatPct != nil {
		fmt.Fprintf(&b, "Body fat      %.1f%%\n", *p.BodyFatPct*100)
	}
	fmt.Fprintf(&b, "Activity      %s\n", strings.ReplaceAll(string(p.ActivityLevel), "_", " "))
	fmt.Fprintf(&b, "Fat ratio     %.0f%% of calories\n", p.EffectiveFatRatio()*100)
	return b.String()
}

// FormatWeightLog lists weigh-ins with the change from the previous one.
func FormatWeightLog(entries []*domain.WeightEntry, unit domain.WeightUnit) string {
	if len(entries) == 0 {
		return Dim("No weigh-ins logged.") + "\n"
	}
	headers := []string{"DATE", "WEIGHT", "CHANGE", "NOTE"}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		change := Dim("--")
		if i > 0 {
			d := e.Weight - entries[i-1].Weight
			style := StyleDim
			switch {
			case d < 0:
				style = StyleGreen
			case d > 0:
				style = StyleYellow
			}
			change = style.Render(fmt.Sprintf("%+.1f", d))
		}
		rows = append(rows, []string{
			e.Date.Format(domain.DateLayout),
			FormatWeight(e.Weight, unit),
			change,
			Dim(Truncate(e.Note, 40)),
		})
	}
	return RenderTableAligned(headers, rows, []bool{false, true, true, false})
}
