// Package staterepo stores the order state reference rows.
package staterepo

import "production/internal/core/domain/model/order"

// OrderStateDTO is one row of order_states. ID equals the order.Status value
// stored in orders.status.
type OrderStateDTO struct {
	ID           int    `gorm:"primaryKey;autoIncrement:false"`
	Code         string `gorm:"size:32;not null;uniqueIndex"`
	Description  string `gorm:"size:64;not null"`
	DisplayOrder int    `gorm:"not null"`
	Active       bool   `gorm:"not null"`
}

// TableName overrides GORM's default naming.
func (OrderStateDTO) TableName() string {
	return "order_states"
}

func fromDomain(info order.StateInfo) OrderStateDTO {
	return OrderStateDTO{
		ID:           int(info.Status),
		Code:         info.Code,
		Description:  info.Description,
		DisplayOrder: info.DisplayOrder,
		Active:       info.Active,
	}
}

func toDomain(dto OrderStateDTO) (order.StateInfo, error) {
	status := order.Status(dto.ID)
	if err := status.Validate(); err != nil {
		return order.StateInfo{}, err
	}

	return order.StateInfo{
		Status:       status,
		Code:         dto.Code,
		Description:  dto.Description,
		DisplayOrder: dto.DisplayOrder,
		Active:       dto.Active,
	}, nil
}
