package commands

import (
	"context"

	"production/internal/core/domain/services"
	"production/internal/core/ports"
)

// SyncCalendarCommandHandler replaces the calendar with the reservations of every
// stored order. It holds all order locks, so no command is half-applied while the
// calendar is swapped.
type SyncCalendarCommandHandler struct {
	uowFactory OrderUoWFactory
	calendar   *services.ResourceCalendar
	locks      *OrderLocks
}

func NewSyncCalendarCommandHandler(
	uowFactory OrderUoWFactory,
	calendar *services.ResourceCalendar,
	locks *OrderLocks,
) SyncCalendarCommandHandler {
	return SyncCalendarCommandHandler{
		uowFactory: uowFactory,
		calendar:   calendar,
		locks:      locks,
	}
}

// Handle returns the number of reservations loaded.
func (h SyncCalendarCommandHandler) Handle(ctx context.Context, cmd SyncCalendarCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	unlock := h.locks.LockAll()
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().List(ctx, ports.OrderListFilter{})
	if err != nil {
		return 0, err
	}

	entries := make([]services.CalendarEntry, 0, len(orders))
	for _, o := range orders {
		entries = append(entries, services.CalendarEntry{
			CenterID: o.WorkCenterID(),
			OrderID:  o.ID(),
			Window:   o.Window(),
		})
	}
	h.calendar.Rebuild(entries)

	return len(entries), nil
}
