package errs

import (
	"errors"
	"fmt"
)

// ErrUnknownState is the sentinel for lifecycle state codes outside the known set.
var ErrUnknownState = errors.New("unknown state")

// UnknownStateError carries the unrecognized state code.
type UnknownStateError struct {
	Code  string
	Cause error
}

func NewUnknownStateError(code string) *UnknownStateError {
	return &UnknownStateError{Code: code}
}

func NewUnknownStateErrorWithCause(code string, cause error) *UnknownStateError {
	return &UnknownStateError{Code: code, Cause: cause}
}

func (e *UnknownStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %q (cause: %v)", ErrUnknownState, e.Code, e.Cause)
	}
	return fmt.Sprintf("%s: %q", ErrUnknownState, e.Code)
}

func (e *UnknownStateError) Unwrap() error {
	return ErrUnknownState
}
