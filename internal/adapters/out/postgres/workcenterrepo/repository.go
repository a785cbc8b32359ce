package workcenterrepo

import (
	"context"
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/workcenter"
	"production/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkCenterRepository implements ports.WorkCenterRepository using GORM.
type GormWorkCenterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormWorkCenterRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkCenterRepository {
	return &GormWorkCenterRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormWorkCenterRepository) Add(ctx context.Context, wc *workcenter.WorkCenter) error {
	if err := wc.Validate(); err != nil {
		return err
	}

	dto := fromDomain(wc)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(wc.ID(), wc)
	return nil
}

func (r *GormWorkCenterRepository) Get(ctx context.Context, id kernel.UUID) (*workcenter.WorkCenter, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkCenterDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work center", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns every work center ordered by description.
func (r *GormWorkCenterRepository) GetAll(ctx context.Context) ([]*workcenter.WorkCenter, error) {
	var dtos []WorkCenterDTO
	if err := r.db.WithContext(ctx).Order("description").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	centers := make([]*workcenter.WorkCenter, 0, len(dtos))
	for _, dto := range dtos {
		wc, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		centers = append(centers, wc)
	}

	return centers, nil
}

// Delete removes the work center unless orders still reference it.
func (r *GormWorkCenterRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var referencing int64
	if err := r.db.WithContext(ctx).Table("orders").
		Where("work_center_id = ?", id.Bytes()).
		Count(&referencing).Error; err != nil {
		return err
	}
	if referencing > 0 {
		return errs.NewObjectIsReferencedError("work center", id.String(), "orders", referencing)
	}

	result := r.db.WithContext(ctx).Delete(&WorkCenterDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("work center", id.String())
	}

	return nil
}
