package errs

import (
	"errors"
	"fmt"
)

// ErrConcurrencyConflict is the sentinel for optimistic-concurrency failures on save.
var ErrConcurrencyConflict = errors.New("concurrency conflict")

// ConcurrencyConflictError reports that Entity ID was modified since Version was read.
type ConcurrencyConflictError struct {
	Entity  string
	ID      any
	Version int64
	Cause   error
}

func NewConcurrencyConflictError(entity string, id any, version int64) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{
		Entity:  entity,
		ID:      id,
		Version: version,
	}
}

func NewConcurrencyConflictErrorWithCause(
	entity string,
	id any,
	version int64,
	cause error,
) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{
		Entity:  entity,
		ID:      id,
		Version: version,
		Cause:   cause,
	}
}

func (e *ConcurrencyConflictError) Error() string {
	msg := fmt.Sprintf("%s: %s %v was modified concurrently (expected version %d)",
		ErrConcurrencyConflict, e.Entity, e.ID, e.Version)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}
