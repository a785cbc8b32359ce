package ports

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/workcenter"
)

// WorkCenterRepository defines the persistence contract for work centers.
type WorkCenterRepository interface {
	Add(ctx context.Context, wc *workcenter.WorkCenter) error

	// Get returns the work center or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*workcenter.WorkCenter, error)

	GetAll(ctx context.Context) ([]*workcenter.WorkCenter, error)

	// Delete fails with an ObjectIsReferencedError while any order references the center.
	Delete(ctx context.Context, id kernel.UUID) error
}
