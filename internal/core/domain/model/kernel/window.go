package kernel

import (
	"fmt"
	"time"

	"production/internal/pkg/errs"
	"production/internal/pkg/guard"
)

var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow or NewPointWindow constructors")

// TimeWindow is the span a work center is occupied by an order.
//
// A window with an end is half-open: [start, end). A window without an end, or whose
// end equals its start, is a point reservation at start. Bounds are kept in UTC.
type TimeWindow struct {
	start  time.Time
	end    time.Time
	hasEnd bool
	guard  guard.ConstructorGuard
}

// NewTimeWindow builds [start, end), or a point reservation when end is nil or equal to start.
// It fails when start is zero or end precedes start.
func NewTimeWindow(start time.Time, end *time.Time) (TimeWindow, error) {
	if start.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("start")
	}
	if end == nil || end.Equal(start) {
		return NewPointWindow(start)
	}
	if end.Before(start) {
		return TimeWindow{}, errs.NewInvalidWindowError(start.UTC(), end.UTC())
	}

	return TimeWindow{
		start:  start.UTC(),
		end:    end.UTC(),
		hasEnd: true,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewPointWindow builds a zero-duration reservation at start.
func NewPointWindow(start time.Time) (TimeWindow, error) {
	if start.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("start")
	}
	return TimeWindow{
		start: start.UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

// End returns the exclusive end and false for point reservations.
func (w TimeWindow) End() (time.Time, bool) {
	return w.end, w.hasEnd
}

// EndOrNil returns the exclusive end, or nil for point reservations.
func (w TimeWindow) EndOrNil() *time.Time {
	if !w.hasEnd {
		return nil
	}
	end := w.end
	return &end
}

func (w TimeWindow) IsPoint() bool {
	return !w.hasEnd
}

func (w TimeWindow) Duration() time.Duration {
	if !w.hasEnd {
		return 0
	}
	return w.end.Sub(w.start)
}

// Contains reports whether t falls in [start, end). A point window contains only its own instant.
func (w TimeWindow) Contains(t time.Time) bool {
	if !w.hasEnd {
		return t.Equal(w.start)
	}
	return !t.Before(w.start) && t.Before(w.end)
}

// Overlaps reports whether two windows share at least one instant.
// Touching intervals ([8,10) and [10,12)) do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	switch {
	case w.IsPoint() && other.IsPoint():
		return w.start.Equal(other.start)
	case w.IsPoint():
		return other.Contains(w.start)
	case other.IsPoint():
		return w.Contains(other.start)
	default:
		return w.start.Before(other.end) && other.start.Before(w.end)
	}
}

// IsEqual compares bounds; the point/interval distinction is part of equality.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.hasEnd == other.hasEnd && w.start.Equal(other.start) && w.end.Equal(other.end)
}

func (w TimeWindow) String() string {
	if !w.hasEnd {
		return fmt.Sprintf("@%s", w.start.Format(time.RFC3339))
	}
	return fmt.Sprintf("[%s, %s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
