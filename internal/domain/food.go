package domain

import "time"

// NutrientTotals is a sum of calories, macros, and tracked micros.
type NutrientTotals struct {
	Calories float64
	ProteinG float64
	FatG     float64
	CarbG    float64
	FiberG   float64
	SodiumMg float64
}

// Add returns the element-wise sum of t and o.
func (t NutrientTotals) Add(o NutrientTotals) NutrientTotals {
	return NutrientTotals{
		Calories: t.Calories + o.Calories,
		ProteinG: t.ProteinG + o.ProteinG,
		FatG:     t.FatG + o.FatG,
		CarbG:    t.CarbG + o.CarbG,
		FiberG:   t.FiberG + o.FiberG,
		SodiumMg: t.SodiumMg + o.SodiumMg,
	}
}

// Scale multiplies every field by f.
func (t NutrientTotals) Scale(f float64) NutrientTotals {
	return NutrientTotals{
		Calories: t.Calories * f,
		ProteinG: t.ProteinG * f,
		FatG:     t.FatG * f,
		CarbG:    t.CarbG * f,
		FiberG:   t.FiberG * f,
		SodiumMg: t.SodiumMg * f,
	}
}

func (t NutrientTotals) validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"calories", t.Calories},
		{"protein", t.ProteinG},
		{"fat", t.FatG},
		{"carbs", t.CarbG},
		{"fiber", t.FiberG},
		{"sodium", t.SodiumMg},
	}
	for _, f := range fields {
		if !Finite(f.v) {
			return invalid(f.name, "%s must be a number", f.name)
		}
		if f.v < 0 {
			return invalid(f.name, "%s must not be negative", f.name)
		}
	}
	return nil
}

// FoodEntry is one logged food item.
type FoodEntry struct {
	ID        string
	UserID    string
	Date      time.Time
	Meal      MealCategory
	Name      string
	Nutrients NutrientTotals
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *FoodEntry) Validate() error {
	if e.UserID == "" {
		return invalid("user", "user id is required")
	}
	if e.Date.IsZero() {
		return invalid("date", "date is required")
	}
	if e.Name == "" {
		return invalid("name", "food name is required")
	}
	if !ValidMealCategories[e.Meal] {
		return invalid("meal", "unknown meal category %q", e.Meal)
	}
	return e.Nutrients.validate()
}

// FoodFacts is a food-provider record. Per100g holds nutrients per 100 grams.
type FoodFacts struct {
	ID      string
	Name    string
	Source  string
	Note    string
	Per100g NutrientTotals
}

// Portion returns the nutrients for the given number of grams.
func (f FoodFacts) Portion(grams float64) NutrientTotals {
	return f.Per100g.Scale(grams / 100)
}
