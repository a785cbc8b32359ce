package commands

import (
	"context"

	"production/internal/core/domain/model/order"
)

// UpdateOrderDetailsCommandHandler applies direct edits that do not affect scheduling,
// so it bypasses the scheduler and the calendar.
type UpdateOrderDetailsCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *OrderLocks
}

func NewUpdateOrderDetailsCommandHandler(uowFactory OrderUoWFactory, locks *OrderLocks) UpdateOrderDetailsCommandHandler {
	return UpdateOrderDetailsCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

func (h UpdateOrderDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderDetailsCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := h.locks.Lock(cmd.OrderID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = cmd.Apply(o); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
