package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrDeleteWorkCenterCommandIsNotConstructed = errors.New(
	"DeleteWorkCenterCommand must be created via NewDeleteWorkCenterCommand constructor",
)

// DeleteWorkCenterCommand removes a work center no order references.
type DeleteWorkCenterCommand struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteWorkCenterCommand(id kernel.UUID) (DeleteWorkCenterCommand, error) {
	if err := id.Validate(); err != nil {
		return DeleteWorkCenterCommand{}, err
	}

	return DeleteWorkCenterCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteWorkCenterCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWorkCenterCommandIsNotConstructed)
}

func (c DeleteWorkCenterCommand) ID() kernel.UUID {
	return c.id
}
