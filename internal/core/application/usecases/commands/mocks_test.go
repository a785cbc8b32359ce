package commands_test

import (
	"context"
	"testing"
	"time"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/workcenter"
	"production/internal/core/domain/services"
	"production/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, filter ports.OrderListFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockWorkCenterRepository struct{ mock.Mock }

func (m *MockWorkCenterRepository) Add(ctx context.Context, wc *workcenter.WorkCenter) error {
	return m.Called(ctx, wc).Error(0)
}

func (m *MockWorkCenterRepository) Get(ctx context.Context, id kernel.UUID) (*workcenter.WorkCenter, error) {
	args := m.Called(ctx, id)
	wc, _ := args.Get(0).(*workcenter.WorkCenter)
	return wc, args.Error(1)
}

func (m *MockWorkCenterRepository) GetAll(ctx context.Context) ([]*workcenter.WorkCenter, error) {
	args := m.Called(ctx)
	centers, _ := args.Get(0).([]*workcenter.WorkCenter)
	return centers, args.Error(1)
}

func (m *MockWorkCenterRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUoW satisfies every unit of work shape the handlers depend on.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) WorkCenterRepository() ports.WorkCenterRepository {
	return m.Called().Get(0).(ports.WorkCenterRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockWorkCenterUoWFactory struct{ mock.Mock }

func (m *MockWorkCenterUoWFactory) Create() commands.WorkCenterUoW {
	return m.Called().Get(0).(commands.WorkCenterUoW)
}

var day = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func ptr[T any](v T) *T {
	return &v
}

func newOrder(t *testing.T, center kernel.UUID, start time.Time, end *time.Time) *order.Order {
	t.Helper()
	key, err := order.NewBusinessKey("ODP", 2025, "A", 1, 1)
	require.NoError(t, err)
	article, err := order.NewArticle("ART-001", "Bracket", "pcs")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), key, order.Details{
		Article:         article,
		OrderedQuantity: decimal.NewFromInt(100),
		WorkCenterID:    center,
		OperationTypeID: kernel.NewUUID(),
		Start:           start,
		ExpectedEnd:     end,
	})
	require.NoError(t, err)
	return o
}

func newWorkCenter(t *testing.T) *workcenter.WorkCenter {
	t.Helper()
	wc, err := workcenter.NewWorkCenter(kernel.NewUUID(), workcenter.Attributes{Description: "Lathe", Active: true}, day)
	require.NoError(t, err)
	return wc
}

func newScheduler(t *testing.T) (*services.OrderScheduler, *services.ResourceCalendar) {
	t.Helper()
	cal := services.NewResourceCalendar()
	scheduler, err := services.NewOrderScheduler(cal, order.NewStateMachine(kernel.NewFixedClock(at(12, 0))))
	require.NoError(t, err)
	return scheduler, cal
}
