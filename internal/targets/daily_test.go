package targets

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTargets_TenDaysOut(t *testing.T) {
	got, err := ComputeTargets(cutProfile(), today)
	require.NoError(t, err)

	assert.Equal(t, 10, got.DaysRemaining)
	assert.Equal(t, TierDefault, got.Tier)
	assert.Equal(t, ModelWeightMultiplier, got.Model)
	assert.InDelta(t, 180, got.ProteinG, 1e-9)
	assert.InDelta(t, 2790, got.Calories, 1e-9)
	assert.InDelta(t, 77.5, got.FatG, 1e-9)
	assert.InDelta(t, 343.125, got.CarbG, 1e-9)
	assert.Equal(t, 30.0, got.FiberG)
	assert.Equal(t, 2300.0, got.SodiumMg)
	assert.Empty(t, got.Warnings)
}

func TestComputeTargets_OneDayOut(t *testing.T) {
	p := cutProfile()
	got, err := ComputeTargets(p, daysFromToday(9))
	require.NoError(t, err)

	assert.Equal(t, TierOneDayOut, got.Tier)
	assert.Equal(t, 4.0, got.FiberG)
	assert.Equal(t, 800.0, got.SodiumMg)
	// Allowance never touches the calorie budget.
	assert.InDelta(t, 2790, got.Calories, 1e-9)
	assert.InDelta(t, 168.465, AllowedWeight(p, got.Date), 1e-9)
}

func TestComputeTargets_KcalInvariant(t *testing.T) {
	bf := 0.18
	for _, level := range domain.ActivityLevels {
		for _, weight := range []float64{110, 145.5, 180, 232.25, 310} {
			for _, ratio := range []float64{domain.MinFatRatio, 0.2, 0.25, 0.35, domain.MaxFatRatio} {
				for _, model := range []BaselineModel{nil, BMRModel{}} {
					p := cutProfile()
					p.CurrentWeight = weight
					p.TargetWeight = weight * 0.95
					p.ActivityLevel = level
					p.FatRatio = ratio
					p.BodyFatPct = &bf
					name := fmt.Sprintf("%s/%.1f/%.2f/%v", level, weight, ratio, model)

					got, err := NewCalculator(model).ComputeTargets(p, today)
					require.NoError(t, err, name)
					if len(got.Warnings) > 0 {
						continue
					}
					assert.InDelta(t, got.Calories, got.MacroKcalTotal(), 1, name)
					kcal, err := CaloriesFromMacros(got.ProteinG, got.FatG, got.CarbG)
					require.NoError(t, err)
					assert.InDelta(t, got.Calories, kcal, 1, name)
				}
			}
		}
	}
}

func TestComputeTargets_DefaultModelNeverFloorsWithinSavedRatios(t *testing.T) {
	for _, level := range domain.ActivityLevels {
		p := cutProfile()
		p.ActivityLevel = level
		p.FatRatio = domain.MaxFatRatio
		got, err := ComputeTargets(p, today)
		require.NoError(t, err)
		assert.Empty(t, got.Warnings, level)
	}
}

func TestComputeTargets_CarbFloorWarns(t *testing.T) {
	p := cutProfile()
	p.CurrentWeight = 100
	p.ActivityLevel = domain.ActivitySedentary
	p.FatRatio = 0.9

	got, err := ComputeTargets(p, today)
	require.NoError(t, err)
	assert.Zero(t, got.CarbG)
	assert.Contains(t, got.Warnings, WarnCarbFloor)
}

func TestComputeTargets_UnknownActivityIsConfigurationError(t *testing.T) {
	p := cutProfile()
	p.ActivityLevel = "marathon"
	_, err := ComputeTargets(p, today)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}

func TestComputeTargets_KilogramProfile(t *testing.T) {
	p := cutProfile()
	p.Unit = domain.UnitKilograms
	p.CurrentWeight = 180 / domain.PoundsPerKilogram
	p.TargetWeight = 165 / domain.PoundsPerKilogram

	got, err := ComputeTargets(p, today)
	require.NoError(t, err)
	assert.InDelta(t, 180, got.ProteinG, 1e-6)
	assert.InDelta(t, 2790, got.Calories, 1e-6)
}

func TestBMRModel(t *testing.T) {
	p := cutProfile()
	m := BMRModel{}

	// Mifflin-St Jeor, age 30: 10*81.65 + 6.25*177.8 - 150 + 5.
	assert.InDelta(t, 1782.7, m.BMR(p), 0.5)

	bf := 0.2
	p.BodyFatPct = &bf
	// Katch-McArdle: 370 + 21.6 * 65.32.
	assert.InDelta(t, 1780.9, m.BMR(p), 0.5)
	assert.InDelta(t, 1780.9*1.55, m.BaselineCalories(p, 1.55), 1)
}

func TestBaselineModelByName(t *testing.T) {
	m, err := BaselineModelByName("")
	require.NoError(t, err)
	assert.Equal(t, ModelWeightMultiplier, m.Name())

	m, err = BaselineModelByName(ModelBMR)
	require.NoError(t, err)
	assert.Equal(t, ModelBMR, m.Name())

	_, err = BaselineModelByName("harris_benedict")
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}
