package targets

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/weighin/internal/domain"
)

const (
	// DefaultTrendWindow is the number of most recent weigh-ins used for the slope.
	DefaultTrendWindow = 7
	// DefaultTolerancePct is the on-track band around the target weight.
	DefaultTolerancePct = 0.005
)

type ProgressInput struct {
	Profile *domain.Profile
	// Entries may be in any order. Entries dated after Now are ignored.
	Entries []domain.WeightEntry
	Now     time.Time
	// Window is the regression window in points. Zero means DefaultTrendWindow.
	Window int
	// TolerancePct is the band as a fraction of target weight. Zero means DefaultTolerancePct.
	TolerancePct float64
}

// ProgressResult summarizes logged weight against the goal. Weights are in
// the profile's unit; slopes are per day.
type ProgressResult struct {
	Status        domain.ProgressStatus
	DaysRemaining int
	PointsUsed    int

	StartWeight    float64
	LatestWeight   float64
	LatestDate     time.Time
	TargetWeight   float64
	DeltaToTarget  float64
	AllowedWeight  float64
	DeltaToAllowed float64

	SlopePerDay     float64
	PredictedWeight float64
	BandLow         float64
	BandHigh        float64

	ProgressPct         float64
	AvgChangePerDay     float64
	EstimatedDaysToGoal *int
}

// SlopePerWeek is the trend slope scaled to seven days.
func (r ProgressResult) SlopePerWeek() float64 {
	return r.SlopePerDay * 7
}

// EvaluateProgress compares the logged history with the goal. Fewer than two
// usable points is reported as insufficient_data, never as an error.
func EvaluateProgress(in ProgressInput) ProgressResult {
	p := in.Profile
	now := domain.Day(in.Now)
	window := in.Window
	if window <= 0 {
		window = DefaultTrendWindow
	}
	tol := in.TolerancePct
	if tol <= 0 {
		tol = DefaultTolerancePct
	}

	entries := usableEntries(in.Entries, now)
	band := p.TargetWeight * tol
	result := ProgressResult{
		Status:        domain.ProgressInsufficientData,
		DaysRemaining: DaysRemaining(p.TargetDate, now),
		TargetWeight:  p.TargetWeight,
		StartWeight:   p.CurrentWeight,
		BandLow:       p.TargetWeight - band,
		BandHigh:      p.TargetWeight + band,
		ProgressPct:   0,
	}
	if len(entries) == 0 {
		return result
	}

	first, latest := entries[0], entries[len(entries)-1]
	result.StartWeight = first.Weight
	result.LatestWeight = latest.Weight
	result.LatestDate = domain.Day(latest.Date)
	result.DeltaToTarget = latest.Weight - p.TargetWeight
	result.AllowedWeight = AllowedWeight(p, latest.Date)
	result.DeltaToAllowed = latest.Weight - result.AllowedWeight
	result.ProgressPct = progressPct(first.Weight, latest.Weight, p.TargetWeight)

	if span := domain.DaysBetween(first.Date, latest.Date); span > 0 {
		result.AvgChangePerDay = (latest.Weight - first.Weight) / float64(span)
		result.EstimatedDaysToGoal = daysToGoal(latest.Weight, p.TargetWeight, result.AvgChangePerDay)
	}

	recent := entries
	if len(recent) > window {
		recent = recent[len(recent)-window:]
	}
	result.PointsUsed = len(recent)

	slope, err := LinearTrend(recent)
	if err != nil {
		return result
	}
	result.SlopePerDay = slope
	daysToTarget := domain.DaysBetween(latest.Date, p.TargetDate)
	result.PredictedWeight = latest.Weight + slope*float64(daysToTarget)
	result.Status = classifyPrediction(result.PredictedWeight, p.TargetWeight, band, first.Weight > p.TargetWeight)
	return result
}

// LinearTrend fits weight = a + b*day by least squares and returns b in
// weight units per day. Entries must be sorted by date.
func LinearTrend(entries []domain.WeightEntry) (float64, error) {
	if len(entries) < 2 {
		return 0, fmt.Errorf("trend over %d points: %w", len(entries), domain.ErrInsufficientData)
	}
	origin := entries[0].Date
	n := float64(len(entries))
	var sumX, sumY, sumXY, sumXX float64
	for _, e := range entries {
		x := float64(domain.DaysBetween(origin, e.Date))
		sumX += x
		sumY += e.Weight
		sumXY += x * e.Weight
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, fmt.Errorf("trend over a single day: %w", domain.ErrInsufficientData)
	}
	return (n*sumXY - sumX*sumY) / denom, nil
}

func usableEntries(all []domain.WeightEntry, now time.Time) []domain.WeightEntry {
	out := make([]domain.WeightEntry, 0, len(all))
	for _, e := range all {
		if domain.Day(e.Date).After(now) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// classifyPrediction places the predicted weight relative to the band.
// For a loss goal a prediction above the band is behind; for a gain goal it
// is ahead.
func classifyPrediction(predicted, target, band float64, losing bool) domain.ProgressStatus {
	switch {
	case math.Abs(predicted-target) <= band:
		return domain.ProgressOnTrack
	case (predicted > target) == losing:
		return domain.ProgressBehind
	default:
		return domain.ProgressAhead
	}
}

func progressPct(start, latest, target float64) float64 {
	total := start - target
	if total == 0 {
		if latest == target {
			return 100
		}
		return 0
	}
	pct := (start - latest) / total * 100
	return math.Max(0, math.Min(100, pct))
}

// daysToGoal is nil when the current rate does not move toward the target.
func daysToGoal(latest, target, perDay float64) *int {
	remaining := target - latest
	if remaining == 0 {
		zero := 0
		return &zero
	}
	if perDay == 0 || (remaining > 0) != (perDay > 0) {
		return nil
	}
	days := int(math.Ceil(remaining / perDay))
	return &days
}
