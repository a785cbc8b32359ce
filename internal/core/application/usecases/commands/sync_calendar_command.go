package commands

import (
	"errors"

	"production/internal/pkg/guard"
)

var ErrSyncCalendarCommandIsNotConstructed = errors.New(
	"SyncCalendarCommand must be created via NewSyncCalendarCommand constructor",
)

// SyncCalendarCommand rebuilds the in-memory calendar from stored orders.
type SyncCalendarCommand struct {
	guard guard.ConstructorGuard
}

func NewSyncCalendarCommand() SyncCalendarCommand {
	return SyncCalendarCommand{guard: guard.NewConstructorGuard()}
}

func (c SyncCalendarCommand) Validate() error {
	return c.guard.Validate(ErrSyncCalendarCommandIsNotConstructed)
}
