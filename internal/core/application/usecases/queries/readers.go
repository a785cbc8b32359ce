package queries

import (
	"context"

	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/workcenter"
	"production/internal/core/ports"
)

// OrderLister loads orders with a coarse pre-filter.
type OrderLister interface {
	List(ctx context.Context, filter ports.OrderListFilter) ([]*order.Order, error)
}

// WorkCenterLister loads every work center.
type WorkCenterLister interface {
	GetAll(ctx context.Context) ([]*workcenter.WorkCenter, error)
}

// StateLister loads the order state reference rows.
type StateLister interface {
	GetAll(ctx context.Context) ([]order.StateInfo, error)
}
