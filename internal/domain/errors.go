package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks malformed or out-of-range profile and log values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientData marks a trend computation with too few logged points.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrConfiguration marks an unknown enumerator or model name. It is a
	// programming or setup error and must reach the caller.
	ErrConfiguration = errors.New("configuration error")

	// ErrNotFound is returned by stores when a keyed row does not exist.
	ErrNotFound = errors.New("not found")
)

// ValidationError is a boundary validation failure with a user-facing message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
