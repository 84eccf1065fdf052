package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both absent records and records owned by another
	// user; callers can't tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyCompleted rejects a second completion of the same
	// assignment. Completion is deliberately not idempotent.
	ErrAlreadyCompleted = errors.New("task already completed")
)

// ValidationError reports a missing or malformed required field, detected
// before any write happens.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
