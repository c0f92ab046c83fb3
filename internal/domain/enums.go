package domain

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// ValidActivityLevels is the canonical set of accepted activity level strings.
var ValidActivityLevels = map[ActivityLevel]bool{
	ActivitySedentary:        true,
	ActivityLightlyActive:    true,
	ActivityModeratelyActive: true,
	ActivityVeryActive:       true,
	ActivityExtremelyActive:  true,
}

// ActivityLevels lists the tiers from least to most active.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLightlyActive,
	ActivityModeratelyActive,
	ActivityVeryActive,
	ActivityExtremelyActive,
}

type WeightUnit string

const (
	UnitPounds    WeightUnit = "lb"
	UnitKilograms WeightUnit = "kg"
)

type MealCategory string

const (
	MealBreakfast MealCategory = "breakfast"
	MealLunch     MealCategory = "lunch"
	MealDinner    MealCategory = "dinner"
	MealSnacks    MealCategory = "snacks"
)

// MealCategories lists meals in display order.
var MealCategories = []MealCategory{MealBreakfast, MealLunch, MealDinner, MealSnacks}

// ValidMealCategories is the canonical set of accepted meal category strings.
var ValidMealCategories = map[MealCategory]bool{
	MealBreakfast: true,
	MealLunch:     true,
	MealDinner:    true,
	MealSnacks:    true,
}

type ProgressStatus string

const (
	ProgressOnTrack          ProgressStatus = "on_track"
	ProgressBehind           ProgressStatus = "behind"
	ProgressAhead            ProgressStatus = "ahead"
	ProgressInsufficientData ProgressStatus = "insufficient_data"
)
