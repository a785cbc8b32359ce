package order

import (
	"fmt"
	"slices"
	"strings"

	"production/internal/pkg/errs"
)

// Status is the lifecycle state of a production order.
//
//	Issued ──> InProgress ──> Closed
//	  │  ▲         │  ▲
//	  ▼  │         ▼  │
//	Suspended / Urgent ──> InProgress
//
// The drawing shows the usual flow. Which jumps are legal is decided by the
// StateMachine transition table, not by Status itself.
type Status int

const (
	// Unknown is the zero value and never a valid state.
	Unknown Status = iota

	// Issued is the initial state of every new order.
	Issued

	// InProgress marks an order being worked on a center.
	InProgress

	// Suspended marks an order put on hold.
	Suspended

	// Urgent marks an order escalated by the scheduler.
	Urgent

	// Closed is terminal: the order's actual end becomes authoritative.
	Closed
)

type statusInfo struct {
	code         string
	name         string
	color        string
	displayOrder int
	active       bool
}

// statusTable is the single lookup for codes, display attributes and the activity flag.
func statusTable() map[Status]statusInfo {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]statusInfo{
		Issued:     {code: "ISSUED", name: "Issued", color: "#6c757d", displayOrder: 1, active: true},
		InProgress: {code: "IN_PROGRESS", name: "InProgress", color: "#0d6efd", displayOrder: 2, active: true},
		Suspended:  {code: "SUSPENDED", name: "Suspended", color: "#ffc107", displayOrder: 3, active: true},
		Urgent:     {code: "URGENT", name: "Urgent", color: "#dc3545", displayOrder: 4, active: true},
		Closed:     {code: "CLOSED", name: "Closed", color: "#198754", displayOrder: 5, active: false},
	}
}

// AllStatuses returns the valid states in display order.
func AllStatuses() []Status {
	table := statusTable()
	statuses := make([]Status, 0, len(table))
	for s := range table {
		statuses = append(statuses, s)
	}
	slices.SortFunc(statuses, func(a, b Status) int {
		return table[a].displayOrder - table[b].displayOrder
	})
	return statuses
}

// ParseStatus maps an external state code (case-insensitive) to a Status.
// Unrecognized codes yield an UnknownStateError.
func ParseStatus(code string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for s, info := range statusTable() {
		if info.code == normalized {
			return s, nil
		}
	}
	return Unknown, errs.NewUnknownStateError(code)
}

// Validate checks that the Status is one of the known states.
func (s Status) Validate() error {
	if _, ok := statusTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the state name, or "Unknown" for invalid values.
func (s Status) String() string {
	if info, ok := statusTable()[s]; ok {
		return info.name
	}
	return "Unknown"
}

// Code returns the stable external code used by persistence and transport.
func (s Status) Code() string {
	if info, ok := statusTable()[s]; ok {
		return info.code
	}
	return "UNKNOWN"
}

func (s Status) DisplayOrder() int {
	return statusTable()[s].displayOrder
}

func (s Status) Color() string {
	return statusTable()[s].color
}

// IsActive reports whether the state is non-terminal and therefore mutable.
func (s Status) IsActive() bool {
	return statusTable()[s].active
}

func (s Status) IsTerminal() bool {
	return s == Closed
}

// StateInfo is the reference row persisted for each state.
type StateInfo struct {
	Status       Status
	Code         string
	Description  string
	DisplayOrder int
	Active       bool
}

// DefaultStateInfos returns the reference rows for all valid states, in display order.
func DefaultStateInfos() []StateInfo {
	table := statusTable()
	infos := make([]StateInfo, 0, len(table))
	for _, s := range AllStatuses() {
		info := table[s]
		infos = append(infos, StateInfo{
			Status:       s,
			Code:         info.code,
			Description:  info.name,
			DisplayOrder: info.displayOrder,
			Active:       info.active,
		})
	}
	return infos
}
