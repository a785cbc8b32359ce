package commands

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/services"
)

// RescheduleResult is the moved order plus the other orders overlapping its new
// window. Conflicts are warnings; the move has been applied.
type RescheduleResult struct {
	Order     *order.Order
	Conflicts []kernel.UUID
}

// RescheduleOrderCommandHandler applies a move to both the stored order and the
// calendar. If the save or commit fails the calendar reservation is put back.
type RescheduleOrderCommandHandler struct {
	uowFactory UoWFactory
	scheduler  *services.OrderScheduler
	locks      *OrderLocks
}

func NewRescheduleOrderCommandHandler(
	uowFactory UoWFactory,
	scheduler *services.OrderScheduler,
	locks *OrderLocks,
) RescheduleOrderCommandHandler {
	return RescheduleOrderCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		locks:      locks,
	}
}

func (h RescheduleOrderCommandHandler) Handle(ctx context.Context, cmd RescheduleOrderCommand) (RescheduleResult, error) {
	if err := cmd.Validate(); err != nil {
		return RescheduleResult{}, err
	}

	unlock := h.locks.Lock(cmd.OrderID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RescheduleResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return RescheduleResult{}, err
	}

	if _, err = uow.WorkCenterRepository().Get(ctx, cmd.CenterID()); err != nil {
		return RescheduleResult{}, err
	}

	compensation := newCalendarCompensation(h.scheduler, o.ID())
	defer compensation.undo()

	conflicts, err := h.scheduler.Reschedule(o, cmd.CenterID(), cmd.Start(), cmd.End())
	if err != nil {
		return RescheduleResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return RescheduleResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RescheduleResult{}, err
	}
	compensation.markCommitted()

	return RescheduleResult{Order: o, Conflicts: conflicts}, nil
}
