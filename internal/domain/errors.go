package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrValidation      = errors.New("validation error")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrAccessDenied    = errors.New("access denied")
	ErrPersistence     = errors.New("persistence failed")
	ErrMissingQuery    = errors.New("missing query")
	ErrLogUnavailable  = errors.New("audit log unavailable")
	ErrAlreadyResolved = errors.New("request already responded")
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

// Message returns the first field message, which is what clients see.
func (e *ValidationError) Message() string {
	if len(e.Errors) == 0 {
		return "Bad Request."
	}
	return e.Errors[0].Message
}

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

// NotFoundError reports a missing referenced record ("tweet", "user").
type NotFoundError struct {
	Thing string
}

func (e *NotFoundError) Error() string { return e.Thing + " not present." }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NotFound builds a NotFoundError for thing.
func NotFound(thing string) *NotFoundError {
	return &NotFoundError{Thing: thing}
}

// DeniedError is an ownership or target-tier refusal with a client-facing message.
type DeniedError struct {
	Message string
}

func (e *DeniedError) Error() string { return e.Message }

func (e *DeniedError) Unwrap() error { return ErrAccessDenied }

// Denied builds a DeniedError with msg.
func Denied(msg string) *DeniedError {
	return &DeniedError{Message: msg}
}
