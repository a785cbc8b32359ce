package queries

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrGetDashboardMetricsQueryIsNotConstructed = errors.New(
	"GetDashboardMetricsQuery must be created via NewGetDashboardMetricsQuery constructor",
)

// GetDashboardMetricsQuery aggregates every order, or only those of one center.
type GetDashboardMetricsQuery struct {
	centerID *kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetDashboardMetricsQuery(centerID *kernel.UUID) GetDashboardMetricsQuery {
	return GetDashboardMetricsQuery{centerID: centerID, guard: guard.NewConstructorGuard()}
}

func (q GetDashboardMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardMetricsQueryIsNotConstructed)
}

func (q GetDashboardMetricsQuery) CenterID() *kernel.UUID { return q.centerID }
