package app

import (
	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/targets"
)

type ErrorCode string

const (
	ErrProfileMissing ErrorCode = "PROFILE_MISSING"
	ErrInvalidRange   ErrorCode = "INVALID_RANGE"
	ErrFoodNotFound   ErrorCode = "FOOD_NOT_FOUND"
)

// RequestError is a request-level failure with an actionable message.
type RequestError struct {
	Code    ErrorCode
	Message string
}

func (e *RequestError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Unwrap maps the code onto the domain error taxonomy.
func (e *RequestError) Unwrap() error {
	switch e.Code {
	case ErrProfileMissing, ErrFoodNotFound:
		return domain.ErrNotFound
	default:
		return domain.ErrInvalidInput
	}
}

// ProfileMissing is returned when a use case needs a profile the user has
// not set up yet.
func ProfileMissing(userID string) *RequestError {
	return &RequestError{
		Code:    ErrProfileMissing,
		Message: "no profile for user " + userID + "; run 'weighin profile set' first",
	}
}

// Remaining returns target minus consumed. Negative values mean the target
// was exceeded.
func Remaining(t targets.DailyTargets, consumed domain.NutrientTotals) domain.NutrientTotals {
	return domain.NutrientTotals{
		Calories: t.Calories - consumed.Calories,
		ProteinG: t.ProteinG - consumed.ProteinG,
		FatG:     t.FatG - consumed.FatG,
		CarbG:    t.CarbG - consumed.CarbG,
		FiberG:   t.FiberG - consumed.FiberG,
		SodiumMg: t.SodiumMg - consumed.SodiumMg,
	}
}
