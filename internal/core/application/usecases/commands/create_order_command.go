package commands

import (
	"errors"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/errs"
	"production/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderParams are the raw attributes of a new production order.
// A zero Priority selects the default.
type CreateOrderParams struct {
	Type   string
	Year   int
	Series string
	Number int
	Line   int

	ArticleCode        string
	ArticleDescription string
	UnitOfMeasure      string

	OrderedQuantity decimal.Decimal
	CycleTime       float64
	SetupStart      *time.Time
	SetupDuration   time.Duration

	WorkCenterID    kernel.UUID
	OperationTypeID kernel.UUID
	OperatorID      *kernel.UUID

	Start       time.Time
	ExpectedEnd *time.Time
	Priority    int
	Notes       string
}

// CreateOrderCommand issues a new order and reserves its window on the work center.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), CreateOrderParams{
//	    Type: "ODP", Year: 2025, Series: "A", Number: 12, Line: 1,
//	    ArticleCode: "BRK-100", OrderedQuantity: decimal.NewFromInt(500),
//	    WorkCenterID: lathe, OperationTypeID: turning,
//	    Start: start, ExpectedEnd: &end,
//	})
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	key     order.BusinessKey
	details order.Details

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(orderID kernel.UUID, p CreateOrderParams) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setKey(p),
		cmd.setDetails(p),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID      { return c.orderID }
func (c CreateOrderCommand) Key() order.BusinessKey    { return c.key }
func (c CreateOrderCommand) Details() order.Details    { return c.details }
func (c CreateOrderCommand) WorkCenterID() kernel.UUID { return c.details.WorkCenterID }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setKey(p CreateOrderParams) error {
	key, err := order.NewBusinessKey(p.Type, p.Year, p.Series, p.Number, p.Line)
	if err != nil {
		return err
	}
	c.key = key
	return nil
}

func (c *CreateOrderCommand) setDetails(p CreateOrderParams) error {
	var errList []error

	article, err := order.NewArticle(p.ArticleCode, p.ArticleDescription, p.UnitOfMeasure)
	if err != nil {
		errList = append(errList, err)
	}

	var setup *order.Setup
	if p.SetupStart != nil {
		s, setupErr := order.NewSetup(*p.SetupStart, p.SetupDuration)
		if setupErr != nil {
			errList = append(errList, setupErr)
		}
		setup = &s
	}

	var priority order.Priority
	if p.Priority != 0 {
		priority, err = order.NewPriority(p.Priority)
		if err != nil {
			errList = append(errList, err)
		}
	}

	if p.Start.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("start"))
	} else if p.ExpectedEnd != nil && p.ExpectedEnd.Before(p.Start) {
		errList = append(errList, errs.NewInvalidWindowError(p.Start, *p.ExpectedEnd))
	}

	if err = errors.Join(errList...); err != nil {
		return err
	}

	c.details = order.Details{
		Article:         article,
		OrderedQuantity: p.OrderedQuantity,
		CycleTime:       p.CycleTime,
		Setup:           setup,
		WorkCenterID:    p.WorkCenterID,
		OperationTypeID: p.OperationTypeID,
		OperatorID:      p.OperatorID,
		Start:           p.Start,
		ExpectedEnd:     p.ExpectedEnd,
		Priority:        priority,
		Notes:           p.Notes,
	}
	return nil
}
