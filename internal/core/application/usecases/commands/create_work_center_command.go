package commands

import (
	"errors"
	"strings"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/workcenter"
	"production/internal/pkg/guard"
)

var ErrCreateWorkCenterCommandIsNotConstructed = errors.New(
	"CreateWorkCenterCommand must be created via NewCreateWorkCenterCommand constructor",
)

// CreateWorkCenterCommand registers a new schedulable resource.
type CreateWorkCenterCommand struct {
	id         kernel.UUID
	attributes workcenter.Attributes

	guard guard.ConstructorGuard
}

func NewCreateWorkCenterCommand(id kernel.UUID, attrs workcenter.Attributes) (CreateWorkCenterCommand, error) {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if strings.TrimSpace(attrs.Description) == "" {
		errList = append(errList, workcenter.ErrDescriptionIsRequired)
	}
	if err := errors.Join(errList...); err != nil {
		return CreateWorkCenterCommand{}, err
	}

	return CreateWorkCenterCommand{
		id:         id,
		attributes: attrs,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateWorkCenterCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkCenterCommandIsNotConstructed)
}

func (c CreateWorkCenterCommand) ID() kernel.UUID                   { return c.id }
func (c CreateWorkCenterCommand) Attributes() workcenter.Attributes { return c.attributes }
