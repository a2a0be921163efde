package apperrors

import (
	"errors"
	"testing"
)

func TestCustomErrorUnwrapsToSentinel(t *testing.T) {
	err := NewCustomError(ErrInvalidTransition, "student 5 is already approved")

	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("errors.Is(err, ErrInvalidTransition) = false, want true")
	}
	if got := err.Error(); got != "student 5 is already approved" {
		t.Errorf("Error() = %q, want the custom message", got)
	}
}

func TestCustomErrorFallsBackToSentinelMessage(t *testing.T) {
	err := NewCustomError(ErrStudentNotFound, "")
	if got := err.Error(); got != ErrStudentNotFound.Error() {
		t.Errorf("Error() = %q, want %q", got, ErrStudentNotFound.Error())
	}
}

func TestValidationErrorUnwrapsToValidationFailed(t *testing.T) {
	err := NewFieldError("semester", "semester must be between 1 and 8")

	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("errors.Is(err, ErrValidationFailed) = false, want true")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As failed for %T", err)
	}
	if verr.Fields["semester"] == "" {
		t.Errorf("Fields = %v, want semester entry", verr.Fields)
	}
}
