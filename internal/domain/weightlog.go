package domain

import "time"

// MaxLoggedWeight bounds a single weigh-in.
const MaxLoggedWeight = 9999.9

// WeightEntry is one weigh-in. A user has at most one entry per date.
type WeightEntry struct {
	UserID    string
	Date      time.Time
	Weight    float64
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks a weigh-in against the given calendar day. Weigh-ins
// cannot be dated after today.
func (e *WeightEntry) Validate(today time.Time) error {
	if e.UserID == "" {
		return invalid("user", "user id is required")
	}
	if e.Date.IsZero() {
		return invalid("date", "date is required")
	}
	if Day(e.Date).After(Day(today)) {
		return invalid("date", "weigh-in date %s is in the future", Day(e.Date).Format(DateLayout))
	}
	if !Finite(e.Weight) || e.Weight <= 0 || e.Weight > MaxLoggedWeight {
		return invalid("weight", "weight must be between 0 and %.1f", MaxLoggedWeight)
	}
	return nil
}
