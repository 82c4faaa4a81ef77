// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. These errors should be used by use cases
// and mapped to appropriate HTTP status codes by handlers.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate key).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates the request lacks valid authentication credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the authenticated user doesn't have permission.
	ErrForbidden = errors.New("forbidden")

	// ErrTechnical indicates an infrastructure failure (repository, transport).
	// Callers should never depend on the underlying driver's error type.
	ErrTechnical = errors.New("technical failure")
)

// LimitError describes a violated cardinality invariant. It carries the current
// count and the configured limit so handlers can build a user-facing message.
type LimitError struct {
	Resource string
	Current  int
	Limit    int
}

// Error implements the error interface.
func (e *LimitError) Error() string {
	return fmt.Sprintf("%s limit exceeded: %d/%d", e.Resource, e.Current, e.Limit)
}

// Unwrap makes LimitError match ErrConflict through errors.Is.
func (e *LimitError) Unwrap() error {
	return ErrConflict
}

// NewLimitError creates a LimitError for the given resource and counters.
func NewLimitError(resource string, current, limit int) error {
	return &LimitError{Resource: resource, Current: current, Limit: limit}
}

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Technical wraps an infrastructure error so it matches ErrTechnical while
// keeping the original error in the chain for logging.
func Technical(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", message, ErrTechnical, err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
