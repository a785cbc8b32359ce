package commands

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/workcenter"
)

type CreateWorkCenterCommandHandler struct {
	uowFactory WorkCenterUoWFactory
	clock      kernel.Clock
}

func NewCreateWorkCenterCommandHandler(uowFactory WorkCenterUoWFactory, clock kernel.Clock) CreateWorkCenterCommandHandler {
	return CreateWorkCenterCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreateWorkCenterCommandHandler) Handle(
	ctx context.Context,
	cmd CreateWorkCenterCommand,
) (*workcenter.WorkCenter, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	wc, err := workcenter.NewWorkCenter(cmd.ID(), cmd.Attributes(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkCenterRepository().Add(ctx, wc); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return wc, nil
}
