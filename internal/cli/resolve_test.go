package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateArg(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"", today},
		{"today", today},
		{"Yesterday", today.AddDate(0, 0, -1)},
		{"tomorrow", today.AddDate(0, 0, 1)},
		{"-3", today.AddDate(0, 0, -3)},
		{"+2", today.AddDate(0, 0, 2)},
		{"2026-02-28", time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseDateArg(tc.in, today)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %s", got)
		})
	}

	_, err := parseDateArg("next week", today)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseMealAndActivity(t *testing.T) {
	m, err := parseMeal("")
	require.NoError(t, err)
	assert.Equal(t, domain.MealSnacks, m)

	m, err = parseMeal("Dinner")
	require.NoError(t, err)
	assert.Equal(t, domain.MealDinner, m)

	_, err = parseMeal("brunch")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	a, err := parseActivity("Lightly-Active")
	require.NoError(t, err)
	assert.Equal(t, domain.ActivityLightlyActive, a)

	_, err = parseActivity("athlete")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMealValue(t *testing.T) {
	var v mealValue
	assert.Equal(t, domain.MealSnacks, v.Meal())
	assert.Equal(t, "meal", v.Type())

	require.NoError(t, v.Set("LUNCH"))
	assert.Equal(t, domain.MealLunch, v.Meal())
	assert.Equal(t, "lunch", v.String())

	err := v.Set("brunch")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, domain.MealLunch, v.Meal(), "failed set keeps the previous value")
}

func TestProfileFormValues_RoundTrip(t *testing.T) {
	bf := 0.2
	p := &domain.Profile{
		Unit:          domain.UnitKilograms,
		CurrentWeight: 82.5,
		TargetWeight:  77,
		HeightIn:      70,
		BodyFatPct:    &bf,
		ActivityLevel: domain.ActivityVeryActive,
		FatRatio:      0.3,
		TargetDate:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	v := profileFormValuesFrom(p)
	assert.Equal(t, "82.5", v.Weight)
	assert.Equal(t, "20", v.BodyFat)

	var out domain.Profile
	require.NoError(t, v.apply(&out))
	assert.Equal(t, p.CurrentWeight, out.CurrentWeight)
	assert.Equal(t, p.Unit, out.Unit)
	assert.True(t, out.TargetDate.Equal(p.TargetDate))
	require.NotNil(t, out.BodyFatPct)
	assert.InDelta(t, 0.2, *out.BodyFatPct, 1e-9)

	v.BodyFat = ""
	require.NoError(t, v.apply(&out))
	assert.Nil(t, out.BodyFatPct)

	v.Weight = "lots"
	assert.ErrorIs(t, v.apply(&out), domain.ErrInvalidInput)
}

func TestWizardValidators(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	future := futureDateValidator(today)

	assert.NoError(t, future("2026-03-11"))
	assert.Error(t, future("2026-03-10"))
	assert.Error(t, future("soon"))
	assert.NoError(t, validatePositiveFloat("72.5"))
	assert.Error(t, validatePositiveFloat("-1"))
	assert.NoError(t, validateOptionalPercent(""))
	assert.Error(t, validateOptionalPercent("120"))
	assert.NoError(t, validateFatRatio("0.25"))
	assert.Error(t, validateFatRatio("0.9"))
}

func TestWizardValidators_RejectNonFinite(t *testing.T) {
	for _, s := range []string{"NaN", "Inf", "+Inf", "-Inf"} {
		assert.Error(t, validatePositiveFloat(s), s)
		assert.Error(t, validateOptionalPercent(s), s)
		assert.Error(t, validateFatRatio(s), s)
	}
}
