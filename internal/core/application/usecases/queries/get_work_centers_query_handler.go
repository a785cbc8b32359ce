package queries

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetWorkCentersQueryResponse is the work center read model. OpenOrders counts the
// orders not yet closed.
type GetWorkCentersQueryResponse struct {
	ID               kernel.UUID
	Code             string
	Description      string
	Active           bool
	HourlyCapacity   *int
	StandardHourCost *decimal.Decimal
	Notes            string
	TotalOrders      int
	OpenOrders       int
}

// GetWorkCentersQueryHandler reads work centers straight from SQL.
type GetWorkCentersQueryHandler struct {
	db *gorm.DB
}

func NewGetWorkCentersQueryHandler(db *gorm.DB) GetWorkCentersQueryHandler {
	return GetWorkCentersQueryHandler{db: db}
}

// Handle returns the centers ordered by description.
func (h GetWorkCentersQueryHandler) Handle(
	ctx context.Context,
	query GetWorkCentersQuery,
) ([]GetWorkCentersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	centers := make([]GetWorkCentersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			wc.id,
			wc.code,
			wc.description,
			wc.active,
			wc.hourly_capacity,
			wc.standard_hour_cost,
			wc.notes,
			COUNT(o.id) AS total_orders,
			COUNT(o.id) FILTER (WHERE o.status <> ?) AS open_orders
		FROM work_centers wc
		LEFT JOIN orders o ON o.work_center_id = wc.id
		WHERE (NOT ? OR wc.active)
		GROUP BY wc.id
		ORDER BY wc.description, wc.id
	`, int(order.Closed), query.ActiveOnly()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var center GetWorkCentersQueryResponse
		var id uuid.UUID
		var capacity *int64
		var cost decimal.NullDecimal

		err = rows.Scan(
			&id,
			&center.Code,
			&center.Description,
			&center.Active,
			&capacity,
			&cost,
			&center.Notes,
			&center.TotalOrders,
			&center.OpenOrders,
		)
		if err != nil {
			return nil, err
		}

		centerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		center.ID = centerID

		if capacity != nil {
			c := int(*capacity)
			center.HourlyCapacity = &c
		}
		if cost.Valid {
			c := cost.Decimal
			center.StandardHourCost = &c
		}

		centers = append(centers, center)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return centers, nil
}
