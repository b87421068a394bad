package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")
	ErrRemoteService = errors.New("remote service error")
)

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

// FieldErrors collects problems while one input is validated.
type FieldErrors []FieldError

func (e *FieldErrors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// CheckText records "required" for blank values and a length message for
// values longer than max runes. It reports whether value passed.
func (e *FieldErrors) CheckText(field, value string, max int) bool {
	switch {
	case strings.TrimSpace(value) == "":
		e.Add(field, "required")
		return false
	case RuneLen(value) > max:
		e.Add(field, fmt.Sprintf("must be at most %d characters", max))
		return false
	}
	return true
}

// Err returns the collected problems as a *ValidationError, or nil.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return NewValidationErrors(e)
}
