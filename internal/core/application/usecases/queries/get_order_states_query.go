package queries

import (
	"context"
	"errors"

	"production/internal/core/domain/model/order"
	"production/internal/pkg/guard"
)

var ErrGetOrderStatesQueryIsNotConstructed = errors.New(
	"GetOrderStatesQuery must be created via NewGetOrderStatesQuery constructor",
)

type GetOrderStatesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatesQuery() GetOrderStatesQuery {
	return GetOrderStatesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderStatesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatesQueryIsNotConstructed)
}

// GetOrderStatesQueryHandler returns the stored state rows with their UI colour.
type GetOrderStatesQueryHandler struct {
	states StateLister
}

func NewGetOrderStatesQueryHandler(states StateLister) GetOrderStatesQueryHandler {
	return GetOrderStatesQueryHandler{states: states}
}

// OrderStateView is a stored state row plus its colour.
type OrderStateView struct {
	order.StateInfo
	Color string
}

func (h GetOrderStatesQueryHandler) Handle(ctx context.Context, query GetOrderStatesQuery) ([]OrderStateView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	infos, err := h.states.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]OrderStateView, 0, len(infos))
	for _, info := range infos {
		views = append(views, OrderStateView{StateInfo: info, Color: info.Status.Color()})
	}
	return views, nil
}
