package commands

import (
	"errors"
	"fmt"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"
	"production/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateOrderProgressCommandIsNotConstructed = errors.New(
	"UpdateOrderProgressCommand must be created via NewUpdateOrderProgressCommand constructor",
)

// UpdateOrderProgressCommand records how much of an order has been produced.
// Quantities above the ordered quantity are accepted.
type UpdateOrderProgressCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	produced decimal.Decimal

	guard guard.ConstructorGuard
}

func NewUpdateOrderProgressCommand(orderID kernel.UUID, produced decimal.Decimal) (UpdateOrderProgressCommand, error) {
	cmd := UpdateOrderProgressCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProduced(produced),
	); err != nil {
		return UpdateOrderProgressCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderProgressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderProgressCommandIsNotConstructed)
}

func (c UpdateOrderProgressCommand) OrderID() kernel.UUID      { return c.orderID }
func (c UpdateOrderProgressCommand) Produced() decimal.Decimal { return c.produced }

func (c *UpdateOrderProgressCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderProgressCommand) setProduced(produced decimal.Decimal) error {
	if produced.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("produced quantity", fmt.Errorf("%s is negative", produced))
	}
	c.produced = produced
	return nil
}
