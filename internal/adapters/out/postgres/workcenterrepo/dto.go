// Package workcenterrepo persists work centers with GORM.
package workcenterrepo

import (
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/workcenter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkCenterDTO is the work_centers table row.
type WorkCenterDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code             string    `gorm:"size:32;index"`
	Description      string    `gorm:"size:255;not null"`
	Active           bool      `gorm:"not null;default:true"`
	HourlyCapacity   *int
	StandardHourCost decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Notes            string              `gorm:"type:text"`
	CreatedAt        time.Time
	ModifiedAt       time.Time
}

// TableName overrides GORM's default naming.
func (WorkCenterDTO) TableName() string {
	return "work_centers"
}

func fromDomain(wc *workcenter.WorkCenter) WorkCenterDTO {
	var cost decimal.NullDecimal
	if c := wc.StandardHourCost(); c != nil {
		cost = decimal.NewNullDecimal(*c)
	}

	return WorkCenterDTO{
		ID:               wc.ID().Bytes(),
		Code:             wc.Code(),
		Description:      wc.Description(),
		Active:           wc.IsActive(),
		HourlyCapacity:   wc.HourlyCapacity(),
		StandardHourCost: cost,
		Notes:            wc.Notes(),
		CreatedAt:        wc.CreatedAt(),
		ModifiedAt:       wc.ModifiedAt(),
	}
}

func toDomain(dto WorkCenterDTO) (*workcenter.WorkCenter, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var cost *decimal.Decimal
	if dto.StandardHourCost.Valid {
		c := dto.StandardHourCost.Decimal
		cost = &c
	}

	return workcenter.RestoreWorkCenter(id, workcenter.Attributes{
		Code:             dto.Code,
		Description:      dto.Description,
		Active:           dto.Active,
		HourlyCapacity:   dto.HourlyCapacity,
		StandardHourCost: cost,
		Notes:            dto.Notes,
	}, dto.CreatedAt, dto.ModifiedAt)
}
