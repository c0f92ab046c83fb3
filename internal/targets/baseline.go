package targets

import (
	"fmt"

	"github.com/alexanderramin/weighin/internal/domain"
)

// KcalPerPound is the per-pound energy coefficient of the weight x multiplier model.
const KcalPerPound = 10.0

// Baseline model names accepted by BaselineModelByName.
const (
	ModelWeightMultiplier = "weight_multiplier"
	ModelBMR              = "bmr"
)

// BaselineModel estimates daily energy needs before any progress adjustment.
type BaselineModel interface {
	Name() string
	BaselineCalories(p *domain.Profile, activityMultiplier float64) float64
}

// WeightMultiplierModel estimates energy as weight-lb x multiplier x coefficient.
type WeightMultiplierModel struct {
	KcalPerPound float64
}

func (WeightMultiplierModel) Name() string { return ModelWeightMultiplier }

func (m WeightMultiplierModel) BaselineCalories(p *domain.Profile, activityMultiplier float64) float64 {
	coef := m.KcalPerPound
	if coef <= 0 {
		coef = KcalPerPound
	}
	return p.CurrentWeightLB() * activityMultiplier * coef
}

// BMRModel multiplies a basal metabolic rate by the activity multiplier.
// With a known body-fat fraction it uses Katch-McArdle on lean mass;
// otherwise Mifflin-St Jeor with AssumedAge and the male constant.
type BMRModel struct {
	AssumedAge int
}

const (
	defaultAssumedAge = 30
	cmPerInch         = 2.54
	kgPerPound        = 1 / domain.PoundsPerKilogram
)

func (BMRModel) Name() string { return ModelBMR }

// BMR returns the basal metabolic rate in kcal/day.
func (m BMRModel) BMR(p *domain.Profile) float64 {
	weightKG := p.CurrentWeightLB() * kgPerPound
	if p.BodyFatPct != nil && *p.BodyFatPct > 0 {
		lean := weightKG * (1 - *p.BodyFatPct)
		return 370 + 21.6*lean
	}
	age := m.AssumedAge
	if age <= 0 {
		age = defaultAssumedAge
	}
	heightCM := p.HeightIn * cmPerInch
	return 10*weightKG + 6.25*heightCM - 5*float64(age) + 5
}

func (m BMRModel) BaselineCalories(p *domain.Profile, activityMultiplier float64) float64 {
	return m.BMR(p) * activityMultiplier
}

// BaselineModelByName resolves a configured model name.
func BaselineModelByName(name string) (BaselineModel, error) {
	switch name {
	case "", ModelWeightMultiplier:
		return WeightMultiplierModel{KcalPerPound: KcalPerPound}, nil
	case ModelBMR:
		return BMRModel{AssumedAge: defaultAssumedAge}, nil
	default:
		return nil, fmt.Errorf("%w: unknown baseline model %q", domain.ErrConfiguration, name)
	}
}
