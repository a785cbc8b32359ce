package queries

import (
	"errors"

	"production/internal/pkg/guard"
)

var ErrGetWorkCentersQueryIsNotConstructed = errors.New(
	"GetWorkCentersQuery must be created via NewGetWorkCentersQuery constructor",
)

// GetWorkCentersQuery lists work centers with their order load.
// With activeOnly set, inactive centers are left out.
type GetWorkCentersQuery struct {
	activeOnly bool
	guard      guard.ConstructorGuard
}

func NewGetWorkCentersQuery(activeOnly bool) GetWorkCentersQuery {
	return GetWorkCentersQuery{activeOnly: activeOnly, guard: guard.NewConstructorGuard()}
}

func (q GetWorkCentersQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkCentersQueryIsNotConstructed)
}

func (q GetWorkCentersQuery) ActiveOnly() bool { return q.activeOnly }
