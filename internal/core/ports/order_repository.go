// Package ports defines the persistence contracts the scheduling core depends on.
// Adapters implement them; the application layer consumes them through small
// factory interfaces.
package ports

import (
	"context"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
)

// OrderListFilter is the coarse pre-filter a repository applies before the
// in-memory QueryIndex. Empty fields do not filter.
type OrderListFilter struct {
	CenterIDs []kernel.UUID
	States    []order.Status
	StartFrom *time.Time
	StartTo   *time.Time
}

// OrderRepository defines the persistence contract for production orders.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes when the stored version equals aggregate.Version(),
	// then advances the aggregate's version. A stale version yields a
	// ConcurrencyConflictError, a missing order an ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order permanently.
	Delete(ctx context.Context, id kernel.UUID) error

	// List returns the orders matching filter ordered by start.
	List(ctx context.Context, filter OrderListFilter) ([]*order.Order, error)
}
