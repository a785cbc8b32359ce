package commands

import (
	"errors"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"
	"production/internal/pkg/guard"
)

var ErrRescheduleOrderCommandIsNotConstructed = errors.New(
	"RescheduleOrderCommand must be created via NewRescheduleOrderCommand constructor",
)

// RescheduleOrderCommand moves an order to a work center and time window, typically
// after a drag-and-drop on the calendar. A nil end makes the order a point reservation.
type RescheduleOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	centerID kernel.UUID
	start    time.Time
	end      *time.Time

	guard guard.ConstructorGuard
}

// NewRescheduleOrderCommand fails with an InvalidWindowError when end precedes start.
func NewRescheduleOrderCommand(
	orderID, centerID kernel.UUID,
	start time.Time,
	end *time.Time,
) (RescheduleOrderCommand, error) {
	cmd := RescheduleOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCenterID(centerID),
		cmd.setWindow(start, end),
	); err != nil {
		return RescheduleOrderCommand{}, err
	}

	return cmd, nil
}

func (c RescheduleOrderCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleOrderCommandIsNotConstructed)
}

func (c RescheduleOrderCommand) OrderID() kernel.UUID  { return c.orderID }
func (c RescheduleOrderCommand) CenterID() kernel.UUID { return c.centerID }
func (c RescheduleOrderCommand) Start() time.Time      { return c.start }
func (c RescheduleOrderCommand) End() *time.Time       { return c.end }

func (c *RescheduleOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *RescheduleOrderCommand) setCenterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("center id", err)
	}
	c.centerID = id
	return nil
}

func (c *RescheduleOrderCommand) setWindow(start time.Time, end *time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("start")
	}
	if end != nil && end.Before(start) {
		return errs.NewInvalidWindowError(start, *end)
	}
	c.start = start
	c.end = end
	return nil
}
