package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/weighin/internal/domain"
)

// dateToString formats a calendar date for storage.
func dateToString(t time.Time) string {
	return domain.Day(t).Format(domain.DateLayout)
}

// parseDate parses a stored calendar date.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing stored date %q: %w", s, err)
	}
	return t, nil
}

// parseTimestamp parses a stored RFC3339 timestamp. Returns the zero time if
// the value fails to parse.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullableFloatToValue converts a *float64 to a value suitable for storage.
// Returns nil (SQL NULL) if the pointer is nil.
func nullableFloatToValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// parseNullableFloat converts a sql.NullFloat64 into a *float64.
func parseNullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
