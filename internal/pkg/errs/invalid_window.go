package errs

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWindow is the sentinel for time windows whose end precedes their start.
var ErrInvalidWindow = errors.New("invalid window")

// InvalidWindowError carries the rejected bounds.
type InvalidWindowError struct {
	Start time.Time
	End   time.Time
	Cause error
}

func NewInvalidWindowError(start, end time.Time) *InvalidWindowError {
	return &InvalidWindowError{Start: start, End: end}
}

func NewInvalidWindowErrorWithCause(start, end time.Time, cause error) *InvalidWindowError {
	return &InvalidWindowError{Start: start, End: end, Cause: cause}
}

func (e *InvalidWindowError) Error() string {
	msg := fmt.Sprintf("%s: end %s is before start %s",
		ErrInvalidWindow, e.End.Format(time.RFC3339), e.Start.Format(time.RFC3339))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *InvalidWindowError) Unwrap() error {
	return ErrInvalidWindow
}
