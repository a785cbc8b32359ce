// Package orderrepo persists production orders with GORM. It maps the order
// aggregate to a flat row and back, keeping quantities as numeric columns.
package orderrepo

import (
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table row. The business key columns share a unique index.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderType          string          `gorm:"size:16;not null;uniqueIndex:idx_orders_business_key"`
	Year               int             `gorm:"not null;uniqueIndex:idx_orders_business_key"`
	Series             string          `gorm:"size:16;not null;uniqueIndex:idx_orders_business_key"`
	Number             int             `gorm:"not null;uniqueIndex:idx_orders_business_key"`
	Line               int             `gorm:"not null;uniqueIndex:idx_orders_business_key"`
	ArticleCode        string          `gorm:"size:64;not null;index"`
	ArticleDescription string          `gorm:"size:255"`
	UnitOfMeasure      string          `gorm:"size:16"`
	OrderedQuantity    decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	ProducedQuantity   decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	CycleTime          float64
	SetupStart         *time.Time
	SetupNanos         *int64
	WorkCenterID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	OperationTypeID    uuid.UUID  `gorm:"type:uuid;not null"`
	OperatorID         *uuid.UUID `gorm:"type:uuid;index"`
	Start              time.Time  `gorm:"not null;index"`
	ExpectedEnd        *time.Time
	ActualEnd          *time.Time
	Priority           int    `gorm:"not null"`
	Status             int    `gorm:"not null;index"`
	Notes              string `gorm:"type:text"`
	Version            int64  `gorm:"not null;default:0"`
}

// TableName overrides GORM's default naming.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	key := o.Key()
	article := o.Article()

	var operatorID *uuid.UUID
	if id := o.OperatorID(); id != nil {
		raw := id.Bytes()
		operatorID = &raw
	}

	dto := OrderDTO{
		ID:                 o.ID().Bytes(),
		OrderType:          key.Type(),
		Year:               key.Year(),
		Series:             key.Series(),
		Number:             key.Number(),
		Line:               key.Line(),
		ArticleCode:        article.Code(),
		ArticleDescription: article.Description(),
		UnitOfMeasure:      article.UnitOfMeasure(),
		OrderedQuantity:    o.OrderedQuantity(),
		ProducedQuantity:   o.ProducedQuantity(),
		CycleTime:          o.CycleTime(),
		WorkCenterID:       o.WorkCenterID().Bytes(),
		OperationTypeID:    o.OperationTypeID().Bytes(),
		OperatorID:         operatorID,
		Start:              o.Start(),
		ExpectedEnd:        o.ExpectedEnd(),
		ActualEnd:          o.ActualEnd(),
		Priority:           int(o.Priority()),
		Status:             int(o.Status()),
		Notes:              o.Notes(),
		Version:            o.Version(),
	}

	if s := o.Setup(); s != nil {
		start := s.Start()
		nanos := int64(s.Duration())
		dto.SetupStart = &start
		dto.SetupNanos = &nanos
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	centerID, err := kernel.UUIDFromBytes(dto.WorkCenterID[:])
	if err != nil {
		return nil, err
	}
	operationTypeID, err := kernel.UUIDFromBytes(dto.OperationTypeID[:])
	if err != nil {
		return nil, err
	}

	var operatorID *kernel.UUID
	if dto.OperatorID != nil {
		opID, opErr := kernel.UUIDFromBytes((*dto.OperatorID)[:])
		if opErr != nil {
			return nil, opErr
		}
		operatorID = &opID
	}

	key, err := order.NewBusinessKey(dto.OrderType, dto.Year, dto.Series, dto.Number, dto.Line)
	if err != nil {
		return nil, err
	}
	article, err := order.NewArticle(dto.ArticleCode, dto.ArticleDescription, dto.UnitOfMeasure)
	if err != nil {
		return nil, err
	}

	var setup *order.Setup
	if dto.SetupStart != nil {
		var duration time.Duration
		if dto.SetupNanos != nil {
			duration = time.Duration(*dto.SetupNanos)
		}
		s, setupErr := order.NewSetup(*dto.SetupStart, duration)
		if setupErr != nil {
			return nil, setupErr
		}
		setup = &s
	}

	return order.RestoreOrder(id, key, order.Details{
		Article:         article,
		OrderedQuantity: dto.OrderedQuantity,
		CycleTime:       dto.CycleTime,
		Setup:           setup,
		WorkCenterID:    centerID,
		OperationTypeID: operationTypeID,
		OperatorID:      operatorID,
		Start:           dto.Start,
		ExpectedEnd:     dto.ExpectedEnd,
		Priority:        order.Priority(dto.Priority),
		Notes:           dto.Notes,
	}, order.Status(dto.Status), dto.ProducedQuantity, dto.ActualEnd, dto.Version)
}
