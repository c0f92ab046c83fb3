package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/weighin/internal/app"
	"github.com/alexanderramin/weighin/internal/domain"
)

const goalProgressBarWidth = 20

// FormatProgress renders the trend status and goal statistics.
func FormatProgress(resp *app.ProgressResponse) string {
	var b strings.Builder
	r := resp.Result
	unit := resp.Profile.Unit

	fmt.Fprintf(&b, "%s  %s\n\n", StatusIndicator(r.Status), Dim(DaysLabel(r.DaysRemaining)))

	if r.Status == domain.ProgressInsufficientData {
		b.WriteString(Dim("Log at least two weigh-ins on different days to see a trend.") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Start      %s\n", FormatWeight(r.StartWeight, unit))
	fmt.Fprintf(&b, "Latest     %s %s\n", Bold(FormatWeight(r.LatestWeight, unit)), Dim(r.LatestDate.Format(domain.DateLayout)))
	fmt.Fprintf(&b, "Target     %s %s\n", FormatWeight(r.TargetWeight, unit), Dim("("+FormatSignedWeight(r.DeltaToTarget, unit)+" to go)"))
	fmt.Fprintf(&b, "Allowed    %s %s\n", FormatWeight(r.AllowedWeight, unit), Dim("("+FormatSignedWeight(r.DeltaToAllowed, unit)+")"))
	fmt.Fprintf(&b, "Progress   %s\n\n", RenderProgress(r.ProgressPct/100, goalProgressBarWidth))

	fmt.Fprintf(&b, "Trend      %s/week over %d weigh-ins\n", FormatSignedWeight(r.SlopePerWeek(), unit), r.PointsUsed)
	fmt.Fprintf(&b, "Predicted  %s on goal day %s\n",
		StatusColor(r.Status).Render(FormatWeight(r.PredictedWeight, unit)),
		Dim(fmt.Sprintf("(on track %.1f to %.1f)", r.BandLow, r.BandHigh)))
	fmt.Fprintf(&b, "Average    %s/day\n", FormatSignedWeight(r.AvgChangePerDay, unit))
	if r.EstimatedDaysToGoal != nil {
		fmt.Fprintf(&b, "At this rate the goal is %d days away.\n", *r.EstimatedDaysToGoal)
	} else {
		b.WriteString(Dim("Not moving toward the goal at the current rate.") + "\n")
	}
	return b.String()
}

// FormatTrajectory lists allowed weight per day next to logged weigh-ins.
func FormatTrajectory(resp *app.TrajectoryResponse) string {
	unit := resp.Profile.Unit
	headers := []string{"DATE", "DAYS", "TIER", "ALLOWED", "LOGGED", "DIFF"}
	rows := make([][]string, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		p := row.Point
		logged, diff := Dim("--"), ""
		if row.Logged != nil {
			logged = FormatWeight(*row.Logged, unit)
			d := *row.Logged - p.AllowedWeight
			style := StyleGreen
			if d > 0 {
				style = StyleRed
			}
			diff = style.Render(fmt.Sprintf("%+.1f", d))
		}
		rows = append(rows, []string{
			p.Date.Format(domain.DateLayout),
			fmt.Sprintf("%d", p.DaysRemaining),
			TierBadge(p.Tier),
			FormatWeight(p.AllowedWeight, unit),
			logged,
			diff,
		})
	}
	return RenderTableAligned(headers, rows, []bool{false, true, false, true, true, true})
}
