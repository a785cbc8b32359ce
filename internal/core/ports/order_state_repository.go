package ports

import (
	"context"

	"production/internal/core/domain/model/order"
)

// OrderStateRepository stores the reference rows of the lifecycle states.
type OrderStateRepository interface {
	// GetAll returns the states in display order.
	GetAll(ctx context.Context) ([]order.StateInfo, error)

	// Delete fails with an ObjectIsReferencedError while any order is in the state.
	Delete(ctx context.Context, status order.Status) error

	// Seed inserts or refreshes the rows for every known state.
	Seed(ctx context.Context) error
}
