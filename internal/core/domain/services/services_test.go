package services_test

import (
	"testing"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func ptr[T any](v T) *T {
	return &v
}

func window(t *testing.T, start time.Time, end *time.Time) kernel.TimeWindow {
	t.Helper()
	w, err := kernel.NewTimeWindow(start, end)
	require.NoError(t, err)
	return w
}

type orderSpec struct {
	number      int
	center      kernel.UUID
	start       time.Time
	expectedEnd *time.Time
	article     string
	priority    order.Priority
	ordered     int64
	operator    *kernel.UUID
	operation   kernel.UUID
}

func makeOrder(t *testing.T, s orderSpec) *order.Order {
	t.Helper()
	if s.number == 0 {
		s.number = 1
	}
	if s.article == "" {
		s.article = "ART-001"
	}
	if s.center == (kernel.UUID{}) {
		s.center = kernel.NewUUID()
	}
	if s.operation == (kernel.UUID{}) {
		s.operation = kernel.NewUUID()
	}
	if s.ordered == 0 {
		s.ordered = 100
	}

	key, err := order.NewBusinessKey("ODP", 2025, "A", s.number, 1)
	require.NoError(t, err)
	article, err := order.NewArticle(s.article, "", "pcs")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), key, order.Details{
		Article:         article,
		OrderedQuantity: decimal.NewFromInt(s.ordered),
		WorkCenterID:    s.center,
		OperationTypeID: s.operation,
		OperatorID:      s.operator,
		Start:           s.start,
		ExpectedEnd:     s.expectedEnd,
		Priority:        s.priority,
	})
	require.NoError(t, err)
	return o
}
