package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")

	// ErrStoreUnavailable means the document store could not be reached:
	// transport failure, timeout or cancellation. Callers may retry.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrStoreRejected means the document store refused the operation
	// (permission or rule violation). Retrying the same call will not help.
	ErrStoreRejected = errors.New("store rejected")

	// ErrProviderUnavailable means the identity provider could not be reached.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// IsRetryable reports whether err is a store failure the caller may retry.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable) && !errors.Is(err, ErrStoreRejected)
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
