package queries

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/services"
	"production/internal/core/ports"
)

// OrderView is an order together with the figures derived for it.
type OrderView struct {
	Order   *order.Order
	Metrics services.OrderMetrics
}

// GetOrdersQueryResponse is one page of orders.
type GetOrdersQueryResponse struct {
	Items      []OrderView
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// GetOrdersQueryHandler pushes the center, state and start-range criteria down to
// storage, then filters, sorts and pages in memory. Derived fields are computed
// for the returned page only.
type GetOrdersQueryHandler struct {
	orders  OrderLister
	index   services.QueryIndex
	metrics *services.MetricsCalculator
}

func NewGetOrdersQueryHandler(
	orders OrderLister,
	index services.QueryIndex,
	metrics *services.MetricsCalculator,
) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{
		orders:  orders,
		index:   index,
		metrics: metrics,
	}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	filter := query.Filter()
	loaded, err := h.orders.List(ctx, storageFilter(filter))
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	result := h.index.Query(loaded, filter, query.Sort(), query.Page())

	items := make([]OrderView, 0, len(result.Items))
	for _, o := range result.Items {
		items = append(items, OrderView{Order: o, Metrics: h.metrics.ForOrder(o)})
	}

	return GetOrdersQueryResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}, nil
}

func storageFilter(f services.OrderFilter) ports.OrderListFilter {
	pre := ports.OrderListFilter{
		States:    f.States,
		StartFrom: f.StartFrom,
		StartTo:   f.StartTo,
	}
	if f.CenterID != nil {
		pre.CenterIDs = []kernel.UUID{*f.CenterID}
	}
	return pre
}
