package queries_test

import (
	"context"
	"testing"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/workcenter"
	"production/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderLister struct{ mock.Mock }

func (m *MockOrderLister) List(ctx context.Context, filter ports.OrderListFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockWorkCenterLister struct{ mock.Mock }

func (m *MockWorkCenterLister) GetAll(ctx context.Context) ([]*workcenter.WorkCenter, error) {
	args := m.Called(ctx)
	centers, _ := args.Get(0).([]*workcenter.WorkCenter)
	return centers, args.Error(1)
}

type MockStateLister struct{ mock.Mock }

func (m *MockStateLister) GetAll(ctx context.Context) ([]order.StateInfo, error) {
	args := m.Called(ctx)
	infos, _ := args.Get(0).([]order.StateInfo)
	return infos, args.Error(1)
}

var today = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

func at(days, hour int) time.Time {
	return today.AddDate(0, 0, days).Add(time.Duration(hour) * time.Hour)
}

func ptr[T any](v T) *T {
	return &v
}

var orderNumber int

func newOrder(t *testing.T, center kernel.UUID, start time.Time, end *time.Time, produced int64) *order.Order {
	t.Helper()
	orderNumber++
	key, err := order.NewBusinessKey("ODP", 2025, "Q", orderNumber, 1)
	require.NoError(t, err)
	article, err := order.NewArticle("ART-9", "Hub", "pcs")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), key, order.Details{
		Article:         article,
		OrderedQuantity: decimal.NewFromInt(200),
		WorkCenterID:    center,
		OperationTypeID: kernel.NewUUID(),
		Start:           start,
		ExpectedEnd:     end,
	})
	require.NoError(t, err)
	require.NoError(t, o.UpdateProgress(decimal.NewFromInt(produced)))
	return o
}

func newWorkCenter(t *testing.T, description string) *workcenter.WorkCenter {
	t.Helper()
	wc, err := workcenter.NewWorkCenter(kernel.NewUUID(), workcenter.Attributes{
		Code:        description[:3],
		Description: description,
		Active:      true,
	}, today)
	require.NoError(t, err)
	return wc
}
