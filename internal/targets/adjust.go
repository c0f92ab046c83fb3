package targets

import (
	"math"

	"github.com/alexanderramin/weighin/internal/domain"
)

// Progress adjustment constants: a fixed calorie step when the latest
// weigh-in is more than ProgressToleranceLB off the trajectory.
const (
	ProgressAdjustmentKcal = 200.0
	ProgressToleranceLB    = 1.0
)

type AdjustmentReason string

const (
	AdjustOnTrack         AdjustmentReason = "on_track"
	AdjustCuttingWindow   AdjustmentReason = "cutting_window"
	AdjustPastGoal        AdjustmentReason = "past_goal"
	AdjustNeedsWeightLog  AdjustmentReason = "needs_weight_log"
	AdjustAboveTrajectory AdjustmentReason = "above_trajectory"
	AdjustBelowTrajectory AdjustmentReason = "below_trajectory"
)

// CalorieAdjustment records how and why a day's calories were shifted.
// Weights are in the profile's unit.
type CalorieAdjustment struct {
	Applied       bool
	DeltaKcal     float64
	Reason        AdjustmentReason
	ActualWeight  float64
	AllowedWeight float64
	Difference    float64
}

// AdjustForProgress shifts t's calories by ProgressAdjustmentKcal when the
// latest weigh-in on or before t.Date is off the trajectory, then re-splits
// macros against the new budget. Inside the cutting window and after the
// goal date targets are left as computed.
func (c *Calculator) AdjustForProgress(p *domain.Profile, t DailyTargets, latest *domain.WeightEntry) (DailyTargets, CalorieAdjustment, error) {
	if t.DaysRemaining < 0 {
		return t, CalorieAdjustment{Reason: AdjustPastGoal}, nil
	}
	if t.DaysRemaining <= CuttingWindowDays {
		return t, CalorieAdjustment{Reason: AdjustCuttingWindow}, nil
	}
	if latest == nil {
		return t, CalorieAdjustment{Reason: AdjustNeedsWeightLog}, nil
	}

	allowed := AllowedWeight(p, t.Date)
	adj := CalorieAdjustment{
		Reason:        AdjustOnTrack,
		ActualWeight:  latest.Weight,
		AllowedWeight: allowed,
		Difference:    latest.Weight - allowed,
	}

	diffLB := domain.ToPounds(adj.Difference, p.Unit)
	switch {
	case diffLB > ProgressToleranceLB:
		adj.DeltaKcal = -ProgressAdjustmentKcal
		adj.Reason = AdjustAboveTrajectory
	case diffLB < -ProgressToleranceLB:
		adj.DeltaKcal = ProgressAdjustmentKcal
		adj.Reason = AdjustBelowTrajectory
	default:
		return t, adj, nil
	}

	adjusted, err := c.splitCalories(p, t, math.Max(0, t.Calories+adj.DeltaKcal))
	if err != nil {
		return t, CalorieAdjustment{}, err
	}
	adj.Applied = true
	return adjusted, adj, nil
}
