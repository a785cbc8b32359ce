package queries

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/workcenter"
	"production/internal/core/domain/services"
	"production/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// CenterSummary names a work center next to its aggregated figures.
type CenterSummary struct {
	CenterID    kernel.UUID
	Code        string
	Description string
	Stats       services.CenterStats
}

// GetDashboardMetricsQueryResponse is the dashboard read model. Centers lists every
// known center in storage order, including those without orders.
type GetDashboardMetricsQueryResponse struct {
	Metrics services.DashboardMetrics
	Centers []CenterSummary
}

type GetDashboardMetricsQueryHandler struct {
	orders  OrderLister
	centers WorkCenterLister
	metrics *services.MetricsCalculator
}

func NewGetDashboardMetricsQueryHandler(
	orders OrderLister,
	centers WorkCenterLister,
	metrics *services.MetricsCalculator,
) GetDashboardMetricsQueryHandler {
	return GetDashboardMetricsQueryHandler{
		orders:  orders,
		centers: centers,
		metrics: metrics,
	}
}

// Handle loads orders and centers concurrently; the first failure cancels the other load.
func (h GetDashboardMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardMetricsQuery,
) (GetDashboardMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardMetricsQueryResponse{}, err
	}

	filter := ports.OrderListFilter{}
	if id := query.CenterID(); id != nil {
		filter.CenterIDs = []kernel.UUID{*id}
	}

	var (
		orders  []*order.Order
		centers []*workcenter.WorkCenter
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = h.orders.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		centers, err = h.centers.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return GetDashboardMetricsQueryResponse{}, err
	}

	aggregated := h.metrics.Aggregate(orders)

	summaries := make([]CenterSummary, 0, len(centers))
	for _, wc := range centers {
		if id := query.CenterID(); id != nil && !wc.ID().IsEqual(*id) {
			continue
		}
		stats, ok := aggregated.ByCenter[wc.ID()]
		if !ok {
			stats = services.CenterStats{CenterID: wc.ID()}
		}
		summaries = append(summaries, CenterSummary{
			CenterID:    wc.ID(),
			Code:        wc.Code(),
			Description: wc.Description(),
			Stats:       stats,
		})
	}

	return GetDashboardMetricsQueryResponse{Metrics: aggregated, Centers: summaries}, nil
}
