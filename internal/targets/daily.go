package targets

import (
	"fmt"
	"time"

	"github.com/alexanderramin/weighin/internal/domain"
)

// ProteinGramsPerPound is the protein target per pound of body weight.
const ProteinGramsPerPound = 1.0

// WarnCarbFloor is recorded when carbs were clamped to zero.
const WarnCarbFloor = "protein and fat exceed the calorie budget; carbs set to 0"

// DailyTargets is the nutrition target for one day. It is derived on every
// read and never stored.
type DailyTargets struct {
	Date          time.Time
	DaysRemaining int
	Tier          TierKind
	Model         string

	Calories float64
	ProteinG float64
	FatG     float64
	CarbG    float64
	FiberG   float64
	SodiumMg float64

	ProteinKcal float64
	FatKcal     float64
	CarbKcal    float64

	Warnings []string
}

// MacroKcalTotal returns protein + fat + carb calories.
func (t DailyTargets) MacroKcalTotal() float64 {
	return t.ProteinKcal + t.FatKcal + t.CarbKcal
}

// Calculator composes a baseline model with the macro and cutting rules.
// It holds no per-call state and is safe for concurrent use.
type Calculator struct {
	baseline BaselineModel
}

// NewCalculator returns a Calculator using model, or the weight x multiplier
// model when model is nil.
func NewCalculator(model BaselineModel) *Calculator {
	if model == nil {
		model = WeightMultiplierModel{KcalPerPound: KcalPerPound}
	}
	return &Calculator{baseline: model}
}

// Model returns the baseline model in use.
func (c *Calculator) Model() BaselineModel {
	return c.baseline
}

var defaultCalculator = NewCalculator(nil)

// ComputeTargets computes targets with the default weight x multiplier model.
func ComputeTargets(p *domain.Profile, date time.Time) (DailyTargets, error) {
	return defaultCalculator.ComputeTargets(p, date)
}

// ComputeTargets derives the day's macro and micro targets from the profile.
func (c *Calculator) ComputeTargets(p *domain.Profile, date time.Time) (DailyTargets, error) {
	mult, err := ActivityMultiplier(p.ActivityLevel)
	if err != nil {
		return DailyTargets{}, err
	}

	day := NewDayContext(p, date)
	tier := CuttingScheduleFor(day.DaysRemaining)

	t := DailyTargets{
		Date:          day.Date,
		DaysRemaining: day.DaysRemaining,
		Tier:          tier.Kind,
		Model:         c.baseline.Name(),
		FiberG:        tier.FiberG,
		SodiumMg:      tier.SodiumMg,
	}
	return c.splitCalories(p, t, c.baseline.BaselineCalories(p, mult))
}

// splitCalories fills calorie and macro fields of t for the given budget.
func (c *Calculator) splitCalories(p *domain.Profile, t DailyTargets, kcal float64) (DailyTargets, error) {
	proteinG := p.CurrentWeightLB() * ProteinGramsPerPound
	split, err := MacroCaloriesSplit(kcal, proteinG*ProteinKcalPerGram, p.EffectiveFatRatio())
	if err != nil {
		return DailyTargets{}, fmt.Errorf("splitting %.0f kcal: %w", kcal, err)
	}

	t.Calories = kcal
	t.ProteinKcal, t.FatKcal, t.CarbKcal = split.ProteinKcal, split.FatKcal, split.CarbKcal
	t.ProteinG, t.FatG, t.CarbG = split.Grams()
	t.Warnings = nil
	if split.CarbFloored {
		t.Warnings = append(t.Warnings, WarnCarbFloor)
	}
	return t, nil
}
