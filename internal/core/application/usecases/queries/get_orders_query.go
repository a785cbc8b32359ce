package queries

import (
	"errors"

	"production/internal/core/domain/services"
	"production/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New("GetOrdersQuery must be created via NewGetOrdersQuery constructor")

// GetOrdersQuery lists orders with filters, sorting and paging. Non-positive page
// numbers and sizes fall back to the defaults.
type GetOrdersQuery struct {
	filter services.OrderFilter
	sort   services.Sort
	page   services.Page
	guard  guard.ConstructorGuard
}

func NewGetOrdersQuery(filter services.OrderFilter, sort services.Sort, page services.Page) GetOrdersQuery {
	return GetOrdersQuery{
		filter: filter,
		sort:   sort,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Filter() services.OrderFilter { return q.filter }
func (q GetOrdersQuery) Sort() services.Sort           { return q.sort }
func (q GetOrdersQuery) Page() services.Page           { return q.page }
