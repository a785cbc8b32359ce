package commands

import (
	"context"

	"production/internal/core/domain/services"
)

// DeleteOrderCommandHandler hard-deletes an order. The reservation is dropped
// with it and restored if the transaction does not commit.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	scheduler  *services.OrderScheduler
	locks      *OrderLocks
}

func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	scheduler *services.OrderScheduler,
	locks *OrderLocks,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		locks:      locks,
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locks.Lock(cmd.OrderID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	compensation := newCalendarCompensation(h.scheduler, cmd.OrderID())
	defer compensation.undo()

	h.scheduler.Forget(cmd.OrderID())

	if err := uow.Commit(ctx); err != nil {
		return err
	}
	compensation.markCommitted()

	return nil
}
