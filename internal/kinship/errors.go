package kinship

import (
	"errors"
	"fmt"
)

var (
	// ErrSelfLink is returned when a parent-child edge would link a person to themselves.
	ErrSelfLink = errors.New("a person cannot be their own parent")

	// ErrCycleDetected is returned when an edge would make a person their own ancestor.
	ErrCycleDetected = errors.New("edge would create a cycle in the family tree")

	// ErrPersonNotFound is returned when a referenced person does not exist or is deleted.
	ErrPersonNotFound = errors.New("person not found")

	// ErrEdgeNotFound is returned when no edge matches an unlink request.
	ErrEdgeNotFound = errors.New("edge not found")

	// ErrForbidden is returned by the boundary layer for ownership and lock violations.
	ErrForbidden = errors.New("forbidden")

	// ErrRequestNotFound is returned when a relationship request does not exist
	// or is no longer pending.
	ErrRequestNotFound = errors.New("relationship request not found")
)

// ValidationError reports a malformed role, kind or gender combination.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
