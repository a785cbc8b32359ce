package staterepo

import (
	"context"

	"production/internal/core/domain/model/order"
	"production/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderStateRepository implements ports.OrderStateRepository using GORM.
type GormOrderStateRepository struct {
	db *gorm.DB
}

func NewGormOrderStateRepository(db *gorm.DB) *GormOrderStateRepository {
	return &GormOrderStateRepository{db: db}
}

// GetAll returns the stored states in display order.
func (r *GormOrderStateRepository) GetAll(ctx context.Context) ([]order.StateInfo, error) {
	var dtos []OrderStateDTO
	if err := r.db.WithContext(ctx).Order("display_order").Find(&dtos).Error; err != nil {
		return nil, err
	}

	infos := make([]order.StateInfo, 0, len(dtos))
	for _, dto := range dtos {
		info, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// Delete removes a state row unless an order is in that state.
func (r *GormOrderStateRepository) Delete(ctx context.Context, status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	var referencing int64
	if err := r.db.WithContext(ctx).Table("orders").
		Where("status = ?", int(status)).
		Count(&referencing).Error; err != nil {
		return err
	}
	if referencing > 0 {
		return errs.NewObjectIsReferencedError("order state", status.Code(), "orders", referencing)
	}

	result := r.db.WithContext(ctx).Delete(&OrderStateDTO{}, "id = ?", int(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order state", status.Code())
	}

	return nil
}

// Seed upserts a row for every known state.
func (r *GormOrderStateRepository) Seed(ctx context.Context) error {
	infos := order.DefaultStateInfos()
	dtos := make([]OrderStateDTO, 0, len(infos))
	for _, info := range infos {
		dtos = append(dtos, fromDomain(info))
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dtos).Error
}
