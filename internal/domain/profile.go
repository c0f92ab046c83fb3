package domain

import "time"

// DefaultFatRatio is the share of calories from fat when a profile does not set one.
const DefaultFatRatio = 0.25

// Fat ratio bounds accepted at save time. Above the upper bound the 1 g/lb
// protein floor can exceed the calorie budget for sedentary profiles.
const (
	MinFatRatio = 0.10
	MaxFatRatio = 0.60
)

// Profile is one user's body and goal settings. Weights are in Unit; height
// is in inches.
type Profile struct {
	UserID        string
	CurrentWeight float64
	TargetWeight  float64
	Unit          WeightUnit
	HeightIn      float64
	BodyFatPct    *float64 // fraction in [0, 1)
	ActivityLevel ActivityLevel
	FatRatio      float64
	StartDate     time.Time
	TargetDate    time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CurrentWeightLB returns the current weight in pounds.
func (p *Profile) CurrentWeightLB() float64 {
	return ToPounds(p.CurrentWeight, p.Unit)
}

// TargetWeightLB returns the target weight in pounds.
func (p *Profile) TargetWeightLB() float64 {
	return ToPounds(p.TargetWeight, p.Unit)
}

// EffectiveFatRatio returns FatRatio, or DefaultFatRatio when unset.
func (p *Profile) EffectiveFatRatio() float64 {
	if p.FatRatio <= 0 {
		return DefaultFatRatio
	}
	return p.FatRatio
}

// LosingWeight reports whether the goal is below the current weight.
func (p *Profile) LosingWeight() bool {
	return p.TargetWeight < p.CurrentWeight
}

// ApplyDefaults fills optional fields before validation.
func (p *Profile) ApplyDefaults(today time.Time) {
	if p.Unit == "" {
		p.Unit = UnitPounds
	}
	if p.FatRatio == 0 {
		p.FatRatio = DefaultFatRatio
	}
	if p.StartDate.IsZero() {
		p.StartDate = Day(today)
	}
}

// Validate checks a profile at save time against the given calendar day.
func (p *Profile) Validate(today time.Time) error {
	if p.UserID == "" {
		return invalid("user", "user id is required")
	}
	if !Finite(p.CurrentWeight) || p.CurrentWeight <= 0 {
		return invalid("weight", "current weight must be positive")
	}
	if !Finite(p.TargetWeight) || p.TargetWeight <= 0 {
		return invalid("target_weight", "target weight must be positive")
	}
	if !Finite(p.HeightIn) || p.HeightIn <= 0 {
		return invalid("height", "height must be positive")
	}
	if p.Unit != UnitPounds && p.Unit != UnitKilograms {
		return invalid("unit", "unit must be %q or %q", UnitPounds, UnitKilograms)
	}
	if !ValidActivityLevels[p.ActivityLevel] {
		return invalid("activity", "unknown activity level %q", p.ActivityLevel)
	}
	if !Finite(p.FatRatio) || p.FatRatio < MinFatRatio || p.FatRatio > MaxFatRatio {
		return invalid("fat_ratio", "fat ratio must be between %.2f and %.2f", MinFatRatio, MaxFatRatio)
	}
	if p.BodyFatPct != nil && (!Finite(*p.BodyFatPct) || *p.BodyFatPct < 0 || *p.BodyFatPct >= 1) {
		return invalid("body_fat", "body fat must be a fraction between 0 and 1")
	}
	if p.TargetDate.IsZero() {
		return invalid("target_date", "target date is required")
	}
	if !Day(p.TargetDate).After(Day(today)) {
		return invalid("target_date", "target date must be in the future")
	}
	if !Day(p.TargetDate).After(Day(p.StartDate)) {
		return invalid("target_date", "target date must be after the start date")
	}
	return nil
}
