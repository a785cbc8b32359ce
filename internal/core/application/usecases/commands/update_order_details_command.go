package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/errs"
	"production/internal/pkg/guard"
)

var ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
	"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
)

// OrderDetailsChanges lists the edits that leave the schedule untouched. Nil fields
// are kept; ClearOperator unassigns the operator.
type OrderDetailsChanges struct {
	Notes         *string
	OperatorID    *kernel.UUID
	ClearOperator bool
	Priority      *int
}

// UpdateOrderDetailsCommand edits notes, operator and priority of an order.
type UpdateOrderDetailsCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	notes         *string
	operatorID    *kernel.UUID
	clearOperator bool
	priority      *order.Priority

	guard guard.ConstructorGuard
}

func NewUpdateOrderDetailsCommand(orderID kernel.UUID, changes OrderDetailsChanges) (UpdateOrderDetailsCommand, error) {
	cmd := UpdateOrderDetailsCommand{
		notes:         changes.Notes,
		clearOperator: changes.ClearOperator,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOperator(changes.OperatorID),
		cmd.setPriority(changes.Priority),
	); err != nil {
		return UpdateOrderDetailsCommand{}, err
	}

	if cmd.notes == nil && cmd.operatorID == nil && !cmd.clearOperator && cmd.priority == nil {
		return UpdateOrderDetailsCommand{}, errs.NewValueIsRequiredError("changes")
	}

	return cmd, nil
}

func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

func (c UpdateOrderDetailsCommand) OrderID() kernel.UUID { return c.orderID }

// Apply writes the requested edits onto o.
func (c UpdateOrderDetailsCommand) Apply(o *order.Order) error {
	if c.notes != nil {
		o.UpdateNotes(*c.notes)
	}
	if c.clearOperator {
		if err := o.AssignOperator(nil); err != nil {
			return err
		}
	}
	if c.operatorID != nil {
		if err := o.AssignOperator(c.operatorID); err != nil {
			return err
		}
	}
	if c.priority != nil {
		return o.ChangePriority(*c.priority)
	}
	return nil
}

func (c *UpdateOrderDetailsCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderDetailsCommand) setOperator(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("operator id", err)
	}
	c.operatorID = id
	return nil
}

func (c *UpdateOrderDetailsCommand) setPriority(p *int) error {
	if p == nil {
		return nil
	}
	priority, err := order.NewPriority(*p)
	if err != nil {
		return err
	}
	c.priority = &priority
	return nil
}
