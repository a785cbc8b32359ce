package commands

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/services"
)

// CreateOrderResult is the new order and the orders already overlapping its window.
type CreateOrderResult struct {
	Order     *order.Order
	Conflicts []kernel.UUID
}

// CreateOrderCommandHandler persists a new order on an existing work center and
// reserves its window. Overlaps are reported, not rejected.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	scheduler  *services.OrderScheduler
	locks      *OrderLocks
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	scheduler *services.OrderScheduler,
	locks *OrderLocks,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		locks:      locks,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	unlock := h.locks.Lock(cmd.OrderID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.WorkCenterRepository().Get(ctx, cmd.WorkCenterID()); err != nil {
		return CreateOrderResult{}, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Key(), cmd.Details())
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	compensation := newCalendarCompensation(h.scheduler, o.ID())
	defer compensation.undo()

	conflicts, err := h.scheduler.Place(o)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}
	compensation.markCommitted()

	return CreateOrderResult{Order: o, Conflicts: conflicts}, nil
}
