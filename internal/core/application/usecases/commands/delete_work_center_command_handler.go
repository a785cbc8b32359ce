package commands

import (
	"context"
)

// DeleteWorkCenterCommandHandler deletes a work center. The repository refuses with
// an ObjectIsReferencedError while orders still reference it.
type DeleteWorkCenterCommandHandler struct {
	uowFactory WorkCenterUoWFactory
}

func NewDeleteWorkCenterCommandHandler(uowFactory WorkCenterUoWFactory) DeleteWorkCenterCommandHandler {
	return DeleteWorkCenterCommandHandler{uowFactory: uowFactory}
}

func (h DeleteWorkCenterCommandHandler) Handle(ctx context.Context, cmd DeleteWorkCenterCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.WorkCenterRepository().Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
