package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrValidation        = errors.New("validation error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrInvalidID         = errors.New("invalid id")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrExportUnavailable = errors.New("export format unavailable")
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

// TransitionError reports a rejected lead status move.
type TransitionError struct {
	From LeadStatus
	To   LeadStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move lead from %q to %q", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// DuplicateError reports a uniqueness violation with a user-facing message.
type DuplicateError struct {
	Field   string
	Message string
}

func (e *DuplicateError) Error() string { return e.Message }

func (e *DuplicateError) Unwrap() error { return ErrAlreadyExists }

// NewDuplicateError creates a DuplicateError for field.
func NewDuplicateError(field, message string) *DuplicateError {
	return &DuplicateError{Field: field, Message: message}
}
