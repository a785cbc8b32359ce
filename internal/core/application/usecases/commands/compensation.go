package commands

import (
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/services"
)

// calendarCompensation remembers an order's reservation before a command touches
// the calendar and puts it back unless the transaction committed.
type calendarCompensation struct {
	scheduler *services.OrderScheduler
	orderID   kernel.UUID
	previous  services.Placement
	placed    bool
	committed bool
}

func newCalendarCompensation(scheduler *services.OrderScheduler, orderID kernel.UUID) *calendarCompensation {
	previous, placed := scheduler.Snapshot(orderID)
	return &calendarCompensation{
		scheduler: scheduler,
		orderID:   orderID,
		previous:  previous,
		placed:    placed,
	}
}

func (c *calendarCompensation) markCommitted() {
	c.committed = true
}

func (c *calendarCompensation) undo() {
	if c.committed {
		return
	}
	if c.placed {
		c.scheduler.Restore(c.orderID, c.previous)
		return
	}
	c.scheduler.Forget(c.orderID)
}
