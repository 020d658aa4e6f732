// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input for a domain entity fails validation.
	// It is usually wrapped by a ValidationError naming the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrMissingField is returned when a required input field is absent.
	ErrMissingField = fmt.Errorf("%w: missing field", ErrValidation)

	// ErrDuplicateField is returned when a single-valued input field is given more than once.
	ErrDuplicateField = fmt.Errorf("%w: duplicate field", ErrValidation)

	// ErrInvalidID is returned when an entry ID is malformed or out of range.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)
)

// ValidationError reports which field failed validation and why.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
