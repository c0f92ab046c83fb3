package targets

import (
	"fmt"

	"github.com/alexanderramin/weighin/internal/domain"
)

// Energy densities in kcal per gram.
const (
	ProteinKcalPerGram = 4.0
	FatKcalPerGram     = 9.0
	CarbKcalPerGram    = 4.0
)

// MacroCalories is a calorie budget split across the three macros.
type MacroCalories struct {
	ProteinKcal float64
	FatKcal     float64
	CarbKcal    float64
	// CarbFloored is set when protein and fat already exceed the budget and
	// carbs were clamped to zero.
	CarbFloored bool
}

// Grams converts each macro's calories to grams.
func (m MacroCalories) Grams() (proteinG, fatG, carbG float64) {
	return m.ProteinKcal / ProteinKcalPerGram, m.FatKcal / FatKcalPerGram, m.CarbKcal / CarbKcalPerGram
}

// Total returns the sum of the three macro calorie amounts.
func (m MacroCalories) Total() float64 {
	return m.ProteinKcal + m.FatKcal + m.CarbKcal
}

// CaloriesFromMacros returns the energy of the given macro grams.
func CaloriesFromMacros(proteinG, fatG, carbG float64) (float64, error) {
	if proteinG < 0 || fatG < 0 || carbG < 0 {
		return 0, fmt.Errorf("%w: macro grams must not be negative", domain.ErrInvalidInput)
	}
	return proteinG*ProteinKcalPerGram + fatG*FatKcalPerGram + carbG*CarbKcalPerGram, nil
}

// MacroCaloriesSplit allocates totalKcal: protein takes proteinKcal as given,
// fat takes totalKcal*fatRatio, and carbs take the remainder floored at zero.
func MacroCaloriesSplit(totalKcal, proteinKcal, fatRatio float64) (MacroCalories, error) {
	if totalKcal < 0 || proteinKcal < 0 || fatRatio < 0 {
		return MacroCalories{}, fmt.Errorf("%w: calorie split inputs must not be negative", domain.ErrInvalidInput)
	}
	if fatRatio > 1 {
		return MacroCalories{}, fmt.Errorf("%w: fat ratio %.2f exceeds 1", domain.ErrInvalidInput, fatRatio)
	}

	m := MacroCalories{
		ProteinKcal: proteinKcal,
		FatKcal:     totalKcal * fatRatio,
	}
	m.CarbKcal = totalKcal - m.ProteinKcal - m.FatKcal
	if m.CarbKcal < 0 {
		m.CarbKcal = 0
		m.CarbFloored = true
	}
	return m, nil
}
