package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrNotAuthorized is returned when an agent ID does not match a working
	// agent or does not own the resource. Never retried.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrInvalidState is returned when a requested state transition is not
	// in the task state machine, or an operation is illegal in the current
	// entity state.
	ErrInvalidState = errors.New("invalid state transition")

	// ErrCapacityExceeded is returned when a priority bump would exceed
	// double the configured agent limit.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrExternalUnavailable is returned when an LLM or embedding provider
	// is unreachable after retries.
	ErrExternalUnavailable = errors.New("external provider unavailable")

	// ErrTimeout is returned when a blocking operation (human approval,
	// validation) exceeds its deadline.
	ErrTimeout = errors.New("operation timed out")

	// ErrConflict is returned when an edge insertion would create a cycle
	// in the ticket blocking graph, or a concurrent modification is detected.
	ErrConflict = errors.New("conflict")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// RejectionError carries a human rejection reason back to the agent whose
// blocking create-ticket call was denied.
type RejectionError struct {
	TicketID string
	Reason   string
}

func (e *RejectionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("ticket %s rejected by reviewer", e.TicketID)
	}
	return fmt.Sprintf("ticket %s rejected by reviewer: %s", e.TicketID, e.Reason)
}
