package targets

import (
	"testing"

	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weighIn(daysOut int, w float64) *domain.WeightEntry {
	return &domain.WeightEntry{UserID: "fighter", Date: daysFromToday(daysOut), Weight: w}
}

func TestAdjustForProgress(t *testing.T) {
	calc := NewCalculator(nil)

	tests := []struct {
		name    string
		latest  *domain.WeightEntry
		applied bool
		delta   float64
		reason  AdjustmentReason
	}{
		{"above trajectory", weighIn(0, 182), true, -200, AdjustAboveTrajectory},
		{"below trajectory", weighIn(0, 178.5), true, 200, AdjustBelowTrajectory},
		{"within tolerance", weighIn(0, 180.8), false, 0, AdjustOnTrack},
		{"no weigh-in", nil, false, 0, AdjustNeedsWeightLog},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := cutProfile()
			base, err := calc.ComputeTargets(p, today)
			require.NoError(t, err)

			got, adj, err := calc.AdjustForProgress(p, base, tc.latest)
			require.NoError(t, err)
			assert.Equal(t, tc.applied, adj.Applied)
			assert.Equal(t, tc.reason, adj.Reason)
			assert.Equal(t, tc.delta, adj.DeltaKcal)
			assert.InDelta(t, base.Calories+tc.delta, got.Calories, 1e-9)
			assert.InDelta(t, got.Calories, got.MacroKcalTotal(), 1)
			assert.Equal(t, base.ProteinG, got.ProteinG)
		})
	}
}

func TestAdjustForProgress_SkippedInCuttingWindow(t *testing.T) {
	calc := NewCalculator(nil)
	p := cutProfile()
	base, err := calc.ComputeTargets(p, daysFromToday(8))
	require.NoError(t, err)

	got, adj, err := calc.AdjustForProgress(p, base, weighIn(8, 190))
	require.NoError(t, err)
	assert.False(t, adj.Applied)
	assert.Equal(t, AdjustCuttingWindow, adj.Reason)
	assert.Equal(t, base, got)
}

func TestAdjustForProgress_SkippedAfterGoal(t *testing.T) {
	calc := NewCalculator(nil)
	p := cutProfile()
	base, err := calc.ComputeTargets(p, daysFromToday(12))
	require.NoError(t, err)
	require.Equal(t, -2, base.DaysRemaining)

	got, adj, err := calc.AdjustForProgress(p, base, weighIn(12, 190))
	require.NoError(t, err)
	assert.False(t, adj.Applied)
	assert.Equal(t, AdjustPastGoal, adj.Reason)
	assert.Equal(t, base, got)

	goalDay, err := calc.ComputeTargets(p, daysFromToday(10))
	require.NoError(t, err)
	_, adj, err = calc.AdjustForProgress(p, goalDay, weighIn(10, 190))
	require.NoError(t, err)
	assert.Equal(t, AdjustCuttingWindow, adj.Reason, "goal day is still in the cutting window")
}

func TestAdjustForProgress_KilogramTolerance(t *testing.T) {
	calc := NewCalculator(nil)
	p := cutProfile()
	p.Unit = domain.UnitKilograms
	p.CurrentWeight = 80
	p.TargetWeight = 75

	base, err := calc.ComputeTargets(p, today)
	require.NoError(t, err)

	// 0.6 kg is about 1.3 lb.
	_, adj, err := calc.AdjustForProgress(p, base, weighIn(0, 80.6))
	require.NoError(t, err)
	assert.True(t, adj.Applied)
	assert.Equal(t, AdjustAboveTrajectory, adj.Reason)

	_, adj, err = calc.AdjustForProgress(p, base, weighIn(0, 80.3))
	require.NoError(t, err)
	assert.False(t, adj.Applied)
}
