package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/guard"
)

var ErrChangeOrderStateCommandIsNotConstructed = errors.New(
	"ChangeOrderStateCommand must be created via NewChangeOrderStateCommand constructor",
)

// ChangeOrderStateCommand moves an order to the state identified by an external code.
type ChangeOrderStateCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStateCommand fails with an UnknownStateError for unrecognized codes.
func NewChangeOrderStateCommand(orderID kernel.UUID, targetStateCode string) (ChangeOrderStateCommand, error) {
	cmd := ChangeOrderStateCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(targetStateCode),
	); err != nil {
		return ChangeOrderStateCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStateCommandIsNotConstructed)
}

func (c ChangeOrderStateCommand) OrderID() kernel.UUID { return c.orderID }
func (c ChangeOrderStateCommand) Target() order.Status { return c.target }

func (c *ChangeOrderStateCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ChangeOrderStateCommand) setTarget(code string) error {
	target, err := order.ParseStatus(code)
	if err != nil {
		return err
	}
	c.target = target
	return nil
}
