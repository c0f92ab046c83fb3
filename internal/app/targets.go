package app

import (
	"time"

	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/targets"
)

type TargetsRequest struct {
	UserID string
	Date   time.Time
	// SkipAdjustment returns the unadjusted baseline targets.
	SkipAdjustment bool
}

// DayView is everything shown for one calendar day: the freshly computed
// targets, what was eaten, and the weigh-in.
type DayView struct {
	Profile       *domain.Profile
	Date          time.Time
	Baseline      targets.DailyTargets
	Targets       targets.DailyTargets
	Adjustment    targets.CalorieAdjustment
	AllowedWeight float64
	WeighIn       *domain.WeightEntry
	Consumed      domain.NutrientTotals
	ByMeal        map[domain.MealCategory]domain.NutrientTotals
	Entries       []*domain.FoodEntry
	Remaining     domain.NutrientTotals
}
