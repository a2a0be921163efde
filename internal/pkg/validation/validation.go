// Package validation holds the pure pre-persistence validators. Every
// validator returns a structured field->message set and never panics on
// expected-invalid input; the caller decides whether the set becomes a
// client error.
package validation

import (
	"time"

	"github.com/campuskit/admitportal/internal/pkg/apperrors"
)

// DateLayout is the wire format for all request dates.
const DateLayout = "2006-01-02"

// MarksTolerance is the absolute tolerance for the internal+external vs
// total cross-field check.
const MarksTolerance = 0.01

// Errors is an ordered-enough field->message set collected by a validator.
type Errors map[string]string

// Add records a message for a field, keeping the first message if the field
// was already flagged.
func (e Errors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// Merge folds another error set into this one.
func (e Errors) Merge(other Errors) {
	for field, message := range other {
		e.Add(field, message)
	}
}

// Err returns nil when the set is empty, otherwise a ValidationError
// carrying the whole set.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return apperrors.NewValidationError(e)
}

// ParseDate parses a wire-format date, flagging the field on failure.
func ParseDate(e Errors, field, value string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		e.Add(field, field+" must be a date in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return t, true
}

func inRange(v, min, max float64) bool {
	return v >= min && v <= max
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
