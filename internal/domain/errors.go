package domain

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is. Adapters translate them into HTTP status
// codes or CLI failures; nothing in this package knows about transports.
var (
	ErrNotFound    = errors.New("not found")         // no such package
	ErrConflict    = errors.New("conflict")          // duplicate registration
	ErrValidation  = errors.New("validation failed") // bad caller input
	ErrUnavailable = errors.New("unavailable")       // metadata cannot be produced right now
)

// NotFoundError names the missing entity, e.g. package "pyjokes".
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}

	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConflictError reports a catalog registration clash.
type ConflictError struct {
	Entity string
	Reason string
}

func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

func (e *ConflictError) Error() string {
	return e.Entity + " conflict: " + e.Reason
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// ValidationError reports rejected input. Field may be empty.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}

	return "validation failed for " + e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// UnavailableError reports that a resource, such as a package's metadata,
// cannot be produced. Cause stays reachable through errors.Is and errors.As.
type UnavailableError struct {
	Resource string
	Reason   string
	Cause    error
}

func NewUnavailableError(resource, reason string) error {
	return &UnavailableError{Resource: resource, Reason: reason}
}

// NewUnavailableErrorWithCause uses cause's message as the reason.
func NewUnavailableErrorWithCause(resource string, cause error) error {
	e := &UnavailableError{Resource: resource, Cause: cause}
	if cause != nil {
		e.Reason = cause.Error()
	}

	return e
}

func (e *UnavailableError) Error() string {
	if e.Reason == "" {
		return e.Resource + " unavailable"
	}

	return e.Resource + " unavailable: " + e.Reason
}

func (e *UnavailableError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrUnavailable}
	}

	return []error{ErrUnavailable, e.Cause}
}

func IsNotFound(err error) bool    { return errors.Is(err, ErrNotFound) }
func IsConflict(err error) bool    { return errors.Is(err, ErrConflict) }
func IsValidation(err error) bool  { return errors.Is(err, ErrValidation) }
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }
