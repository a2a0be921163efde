package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrInvalidFormat = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrStudentNotDeclined = errors.New("student is not in declined status")
	ErrNoDeclinedFields   = errors.New("no submitted field matches the declined fields")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// SAR errors
var (
	ErrSARHeaderNotFound = errors.New("academic record header not found")
	ErrRecordNotFound    = errors.New("record not found")
	ErrDuplicateSemester = errors.New("an academic record for this semester already exists")
)

// ValidationError is a client-caused error carrying field-level detail.
// Fields maps a field path (e.g. "subjects[2].code") to a human-readable
// message. It unwraps to ErrValidationFailed so callers can match it with
// errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "validation failed"
}

// Unwrap implements errors.Unwrap interface
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a ValidationError from a field->message map
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// NewFieldError creates a ValidationError for a single field
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// NewCustomError wraps a sentinel with a caller-facing message
func NewCustomError(err error, message string) error {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the wrapped sentinel so errors.Is matching works
func (e *CustomError) Unwrap() error {
	return e.Err
}
