package commands

import (
	"context"

	"production/internal/core/domain/model/order"
	"production/internal/core/domain/services"
)

// ChangeStateResult carries the order after the transition.
type ChangeStateResult struct {
	Order *order.Order
}

// ChangeOrderStateCommandHandler applies a lifecycle transition. Closing stamps the
// actual end, which also refreshes the calendar reservation.
type ChangeOrderStateCommandHandler struct {
	uowFactory OrderUoWFactory
	scheduler  *services.OrderScheduler
	locks      *OrderLocks
}

func NewChangeOrderStateCommandHandler(
	uowFactory OrderUoWFactory,
	scheduler *services.OrderScheduler,
	locks *OrderLocks,
) ChangeOrderStateCommandHandler {
	return ChangeOrderStateCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		locks:      locks,
	}
}

func (h ChangeOrderStateCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStateCommand) (ChangeStateResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeStateResult{}, err
	}

	unlock := h.locks.Lock(cmd.OrderID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeStateResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ChangeStateResult{}, err
	}

	compensation := newCalendarCompensation(h.scheduler, o.ID())
	defer compensation.undo()

	updated, err := h.scheduler.ChangeState(o, cmd.Target())
	if err != nil {
		return ChangeStateResult{}, err
	}

	if err = orderRepo.Update(ctx, updated); err != nil {
		return ChangeStateResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeStateResult{}, err
	}
	compensation.markCommitted()

	return ChangeStateResult{Order: updated}, nil
}
