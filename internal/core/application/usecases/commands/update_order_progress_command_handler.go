package commands

import (
	"context"

	"production/internal/core/domain/model/order"
	"production/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// UpdateProgressResult carries the order and its completion percentage rounded to
// two decimals.
type UpdateProgressResult struct {
	Order                *order.Order
	CompletionPercentage decimal.Decimal
}

// UpdateOrderProgressCommandHandler stores the produced quantity. It never touches
// the calendar.
type UpdateOrderProgressCommandHandler struct {
	uowFactory OrderUoWFactory
	scheduler  *services.OrderScheduler
	locks      *OrderLocks
}

func NewUpdateOrderProgressCommandHandler(
	uowFactory OrderUoWFactory,
	scheduler *services.OrderScheduler,
	locks *OrderLocks,
) UpdateOrderProgressCommandHandler {
	return UpdateOrderProgressCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		locks:      locks,
	}
}

func (h UpdateOrderProgressCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderProgressCommand,
) (UpdateProgressResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateProgressResult{}, err
	}

	unlock := h.locks.Lock(cmd.OrderID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateProgressResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return UpdateProgressResult{}, err
	}

	completion, err := h.scheduler.UpdateProgress(o, cmd.Produced())
	if err != nil {
		return UpdateProgressResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return UpdateProgressResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateProgressResult{}, err
	}

	return UpdateProgressResult{Order: o, CompletionPercentage: completion}, nil
}
