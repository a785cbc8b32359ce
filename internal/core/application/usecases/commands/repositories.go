// Package commands contains the write path of the scheduling service.
// Every command follows the same pattern: guarded construction, per-order
// serialization, a transaction, and calendar compensation when the transaction
// does not commit.
package commands

import (
	"context"

	"production/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// WorkCenterRepoFactory provides access to work center repository within a transaction.
	WorkCenterRepoFactory interface {
		WorkCenterRepository() ports.WorkCenterRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// WorkCenterUoW manages transactions for work-center-only operations.
	WorkCenterUoW interface {
		TxManager
		WorkCenterRepoFactory
	}

	// WorkCenterUoWFactory creates new work center unit of work instances.
	WorkCenterUoWFactory interface {
		Create() WorkCenterUoW
	}

	// UoW manages transactions that read work centers while writing orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   center, err := uow.WorkCenterRepository().Get(ctx, centerID)
	//   err = uow.OrderRepository().Update(ctx, o)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		WorkCenterRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
