package targets

import (
	"fmt"

	"github.com/alexanderramin/weighin/internal/domain"
)

var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:        1.2,
	domain.ActivityLightlyActive:    1.375,
	domain.ActivityModeratelyActive: 1.55,
	domain.ActivityVeryActive:       1.725,
	domain.ActivityExtremelyActive:  1.9,
}

// ActivityMultiplier returns the energy multiplier for an activity tier.
// Unknown tiers are a configuration error; there is no default.
func ActivityMultiplier(level domain.ActivityLevel) (float64, error) {
	m, ok := activityMultipliers[level]
	if !ok {
		return 0, fmt.Errorf("%w: unknown activity level %q", domain.ErrConfiguration, level)
	}
	return m, nil
}
