package services

import (
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OrderScheduler is the single write path for an order's placement and lifecycle
// state. It keeps the order and its calendar reservation in step; conflicts are
// returned as warnings.
//
// Side effects never reach beyond the order itself and its own reservation.
type OrderScheduler struct {
	calendar *ResourceCalendar
	states   *order.StateMachine
}

func NewOrderScheduler(calendar *ResourceCalendar, states *order.StateMachine) (*OrderScheduler, error) {
	if calendar == nil {
		return nil, errs.NewValueIsRequiredError("calendar")
	}
	if states == nil {
		return nil, errs.NewValueIsRequiredError("states")
	}

	return &OrderScheduler{calendar: calendar, states: states}, nil
}

// Place reserves the order's current window on its work center.
func (s *OrderScheduler) Place(o *order.Order) ([]kernel.UUID, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	conflicts, _ := s.calendar.Insert(o.WorkCenterID(), o.ID(), o.Window())
	return conflicts, nil
}

// Reschedule moves o to centerID over [start, end) and returns the orders overlapping
// the new window. The order itself is never part of that set, so it equals what
// ResourceCalendar.ConflictsExcluding reports for the same window afterwards. When end
// precedes start nothing changes and an InvalidWindowError is returned.
func (s *OrderScheduler) Reschedule(
	o *order.Order,
	centerID kernel.UUID,
	start time.Time,
	end *time.Time,
) ([]kernel.UUID, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	previousCenter := o.WorkCenterID()
	if err := o.Reschedule(centerID, start, end); err != nil {
		return nil, err
	}

	return s.calendar.Move(previousCenter, o.ID(), o.WorkCenterID(), o.Window()), nil
}

// ChangeState applies target through the state machine and refreshes the
// reservation, since closing or reopening changes the authoritative end.
func (s *OrderScheduler) ChangeState(o *order.Order, target order.Status) (*order.Order, error) {
	updated, err := s.states.Apply(o, target)
	if err != nil {
		return nil, err
	}

	s.calendar.Move(updated.WorkCenterID(), updated.ID(), updated.WorkCenterID(), updated.Window())
	return updated, nil
}

// UpdateProgress records produced and returns the resulting completion percentage.
func (s *OrderScheduler) UpdateProgress(o *order.Order, produced decimal.Decimal) (decimal.Decimal, error) {
	if err := o.Validate(); err != nil {
		return decimal.Zero, err
	}
	if err := o.UpdateProgress(produced); err != nil {
		return decimal.Zero, err
	}

	return o.CompletionPercentage(), nil
}

// Snapshot captures the current reservation of orderID so it can be restored.
func (s *OrderScheduler) Snapshot(orderID kernel.UUID) (Placement, bool) {
	return s.calendar.Placement(orderID)
}

// Restore puts orderID back where a Snapshot found it.
func (s *OrderScheduler) Restore(orderID kernel.UUID, previous Placement) {
	s.calendar.Insert(previous.CenterID, orderID, previous.Window)
}

// Forget drops any reservation of orderID.
func (s *OrderScheduler) Forget(orderID kernel.UUID) {
	s.calendar.Forget(orderID)
}
