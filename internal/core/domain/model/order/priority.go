package order

import (
	"production/internal/pkg/errs"
)

// Priority ranks orders from 1 (minimal) to 5 (critical). It is informational:
// the calendar never reorders by it; metrics and listings consume it.
type Priority int

const (
	PriorityMinimal  Priority = 1
	PriorityLow      Priority = 2
	PriorityNormal   Priority = 3
	PriorityHigh     Priority = 4
	PriorityCritical Priority = 5
)

// NewPriority validates v against the 1–5 range.
func NewPriority(v int) (Priority, error) {
	p := Priority(v)
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p, nil
}

func (p Priority) Validate() error {
	if p < PriorityMinimal || p > PriorityCritical {
		return errs.NewValueIsOutOfRangeError("priority", int(p), int(PriorityMinimal), int(PriorityCritical))
	}
	return nil
}

// IsUrgent reports priorities that count toward the urgent dashboard figure.
func (p Priority) IsUrgent() bool {
	return p >= PriorityHigh
}

func (p Priority) String() string {
	switch p {
	case PriorityMinimal:
		return "Minimal"
	case PriorityLow:
		return "Low"
	case PriorityNormal:
		return "Normal"
	case PriorityHigh:
		return "High"
	case PriorityCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// Color is the calendar badge colour for the priority.
func (p Priority) Color() string {
	switch p {
	case PriorityMinimal, PriorityLow:
		return "#adb5bd"
	case PriorityNormal:
		return "#0d6efd"
	case PriorityHigh:
		return "#fd7e14"
	case PriorityCritical:
		return "#dc3545"
	default:
		return "#000000"
	}
}
