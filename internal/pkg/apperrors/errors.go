// internal/pkg/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrStaleResponse is returned when a collaborator response arrives
	// after the session identity it was issued for has changed.
	ErrStaleResponse = errors.New("response no longer relevant to current session identity")
)

// ValidationError indicates a request was rejected before any state changed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NewValidation creates a ValidationError for a field
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// CollaboratorError indicates a persistence or network failure while talking
// to an external collaborator. The triggering operation was aborted and
// in-memory state is at its last-known-good value.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("collaborator failure during %s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// NewCollaborator wraps err as a CollaboratorError for operation op
func NewCollaborator(op string, err error) error {
	return &CollaboratorError{Op: op, Err: err}
}

// IsCollaborator reports whether err is a CollaboratorError
func IsCollaborator(err error) bool {
	var ce *CollaboratorError
	return errors.As(err, &ce)
}
