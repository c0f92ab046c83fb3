package testutil

import (
	"time"

	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/google/uuid"
)

// Today returns the current calendar day in UTC.
func Today() time.Time {
	return domain.Day(time.Now().UTC())
}

// Profile options
type ProfileOption func(*domain.Profile)

func WithUser(id string) ProfileOption {
	return func(p *domain.Profile) {
		p.UserID = id
	}
}

func WithWeights(current, target float64) ProfileOption {
	return func(p *domain.Profile) {
		p.CurrentWeight = current
		p.TargetWeight = target
	}
}

func WithUnit(u domain.WeightUnit) ProfileOption {
	return func(p *domain.Profile) {
		p.Unit = u
	}
}

func WithActivity(level domain.ActivityLevel) ProfileOption {
	return func(p *domain.Profile) {
		p.ActivityLevel = level
	}
}

func WithFatRatio(r float64) ProfileOption {
	return func(p *domain.Profile) {
		p.FatRatio = r
	}
}

func WithBodyFat(pct float64) ProfileOption {
	return func(p *domain.Profile) {
		p.BodyFatPct = &pct
	}
}

func WithStartDate(d time.Time) ProfileOption {
	return func(p *domain.Profile) {
		p.StartDate = domain.Day(d)
	}
}

// WithDaysToGoal sets the target date relative to the start date.
func WithDaysToGoal(days int) ProfileOption {
	return func(p *domain.Profile) {
		p.TargetDate = p.StartDate.AddDate(0, 0, days)
	}
}

// NewTestProfile returns a valid 180 lb -> 165 lb, moderately active profile
// starting today with the goal 10 days out.
func NewTestProfile(opts ...ProfileOption) *domain.Profile {
	now := time.Now().UTC()
	today := domain.Day(now)
	p := &domain.Profile{
		UserID:        "test-user",
		CurrentWeight: 180,
		TargetWeight:  165,
		Unit:          domain.UnitPounds,
		HeightIn:      70,
		ActivityLevel: domain.ActivityModeratelyActive,
		FatRatio:      domain.DefaultFatRatio,
		StartDate:     today,
		TargetDate:    today.AddDate(0, 0, 10),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WeightEntry options
type WeightOption func(*domain.WeightEntry)

func WithNote(note string) WeightOption {
	return func(e *domain.WeightEntry) {
		e.Note = note
	}
}

func WithWeightUser(id string) WeightOption {
	return func(e *domain.WeightEntry) {
		e.UserID = id
	}
}

func NewTestWeightEntry(date time.Time, weight float64, opts ...WeightOption) *domain.WeightEntry {
	now := time.Now().UTC()
	e := &domain.WeightEntry{
		UserID:    "test-user",
		Date:      domain.Day(date),
		Weight:    weight,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FoodEntry options
type FoodOption func(*domain.FoodEntry)

func WithMeal(m domain.MealCategory) FoodOption {
	return func(e *domain.FoodEntry) {
		e.Meal = m
	}
}

func WithFoodDate(d time.Time) FoodOption {
	return func(e *domain.FoodEntry) {
		e.Date = domain.Day(d)
	}
}

func WithFoodUser(id string) FoodOption {
	return func(e *domain.FoodEntry) {
		e.UserID = id
	}
}

func WithNutrients(n domain.NutrientTotals) FoodOption {
	return func(e *domain.FoodEntry) {
		e.Nutrients = n
	}
}

// NewTestFoodEntry returns a snack logged today: 100 kcal, 10 g protein,
// 2 g fat, 11 g carbs, 1 g fiber, 50 mg sodium.
func NewTestFoodEntry(name string, opts ...FoodOption) *domain.FoodEntry {
	now := time.Now().UTC()
	e := &domain.FoodEntry{
		ID:     uuid.New().String(),
		UserID: "test-user",
		Date:   domain.Day(now),
		Meal:   domain.MealSnacks,
		Name:   name,
		Nutrients: domain.NutrientTotals{
			Calories: 100,
			ProteinG: 10,
			FatG:     2,
			CarbG:    11,
			FiberG:   1,
			SodiumMg: 50,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
