package domain

import "math"

// PoundsPerKilogram is the exact avoirdupois conversion factor.
const PoundsPerKilogram = 2.20462262185

// ToPounds converts a weight in unit u to pounds.
func ToPounds(w float64, u WeightUnit) float64 {
	if u == UnitKilograms {
		return w * PoundsPerKilogram
	}
	return w
}

// Finite reports whether v is neither NaN nor infinite. Comparisons such as
// v <= 0 are false for NaN, so every numeric boundary check starts here.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FromPounds converts a weight in pounds to unit u.
func FromPounds(lb float64, u WeightUnit) float64 {
	if u == UnitKilograms {
		return lb / PoundsPerKilogram
	}
	return lb
}
