package targets

// TierKind names one of the five cutting-schedule tiers.
type TierKind string

const (
	TierGoalDay      TierKind = "goal_day"
	TierOneDayOut    TierKind = "one_day_out"
	TierTwoDaysOut   TierKind = "two_days_out"
	TierThreeDaysOut TierKind = "three_days_out"
	TierDefault      TierKind = "default"
)

// CuttingWindowDays is the last day-out count that belongs to the cutting window.
const CuttingWindowDays = 3

// CuttingTier is the fixed rule for one tier. Allowance is the fraction above
// target weight that the trajectory permits on that day.
type CuttingTier struct {
	Kind      TierKind
	Allowance float64
	FiberG    float64
	SodiumMg  float64
}

var cuttingTiers = map[TierKind]CuttingTier{
	TierGoalDay:      {Kind: TierGoalDay, Allowance: 0, FiberG: 30, SodiumMg: 2300},
	TierOneDayOut:    {Kind: TierOneDayOut, Allowance: 0.021, FiberG: 4, SodiumMg: 800},
	TierTwoDaysOut:   {Kind: TierTwoDaysOut, Allowance: 0.039, FiberG: 5, SodiumMg: 1000},
	TierThreeDaysOut: {Kind: TierThreeDaysOut, Allowance: 0.05, FiberG: 8, SodiumMg: 1500},
	TierDefault:      {Kind: TierDefault, Allowance: 0.05, FiberG: 30, SodiumMg: 2300},
}

// ClassifyDaysRemaining maps days-remaining to its tier. Past-goal days
// (negative) fall into the default tier.
func ClassifyDaysRemaining(daysRemaining int) TierKind {
	switch daysRemaining {
	case 0:
		return TierGoalDay
	case 1:
		return TierOneDayOut
	case 2:
		return TierTwoDaysOut
	case 3:
		return TierThreeDaysOut
	default:
		return TierDefault
	}
}

// CuttingScheduleFor returns the tier rule for the given days-remaining.
func CuttingScheduleFor(daysRemaining int) CuttingTier {
	return cuttingTiers[ClassifyDaysRemaining(daysRemaining)]
}

// InCuttingWindow reports whether daysRemaining is 0..3.
func InCuttingWindow(daysRemaining int) bool {
	return daysRemaining >= 0 && daysRemaining <= CuttingWindowDays
}
