package services_test

import (
	"testing"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCalculator_Lateness(t *testing.T) {
	now := at(15, 0)
	calc := services.NewMetricsCalculator(kernel.NewFixedClock(now), time.UTC)
	closer := order.NewStateMachine(kernel.NewFixedClock(now))

	testCases := []struct {
		name     string
		expected *time.Time
		closed   bool
		want     services.Lateness
	}{
		{"no deadline", nil, false, services.NoDeadline},
		{"yesterday", ptr(day.AddDate(0, 0, -1).Add(9 * time.Hour)), false, services.Overdue},
		{"yesterday but closed", ptr(day.AddDate(0, 0, -1).Add(9 * time.Hour)), true, services.Completed},
		{"earlier today", ptr(at(9, 0)), false, services.DueToday},
		{"in seven days", ptr(day.AddDate(0, 0, 7).Add(23 * time.Hour)), false, services.UpcomingWithin7Days},
		{"tomorrow", ptr(day.AddDate(0, 0, 1)), false, services.UpcomingWithin7Days},
		{"in eight days", ptr(day.AddDate(0, 0, 8)), false, services.ScheduledLater},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start := at(0, 0).AddDate(0, 0, -2)
			o := makeOrder(t, orderSpec{start: start, expectedEnd: tc.expected})
			if tc.closed {
				_, err := closer.Apply(o, order.Closed)
				require.NoError(t, err)
			}

			assert.Equal(t, tc.want, calc.Lateness(o))
		})
	}
}

func TestMetricsCalculator_DayBoundaryFollowsLocation(t *testing.T) {
	rome := time.FixedZone("CET", 3600)
	// 23:30 UTC on the 10th is already the 11th at UTC+1
	now := at(23, 30)
	o := makeOrder(t, orderSpec{start: at(8, 0), expectedEnd: ptr(at(22, 0))})

	assert.Equal(t, services.DueToday, services.NewMetricsCalculator(kernel.NewFixedClock(now), time.UTC).Lateness(o))
	assert.Equal(t, services.Overdue, services.NewMetricsCalculator(kernel.NewFixedClock(now), rome).Lateness(o))
}

func TestMetricsCalculator_Aggregate(t *testing.T) {
	now := at(15, 0)
	calc := services.NewMetricsCalculator(kernel.NewFixedClock(now), nil)
	closer := order.NewStateMachine(kernel.NewFixedClock(now))
	c1, c2 := kernel.NewUUID(), kernel.NewUUID()

	overdueUrgent := makeOrder(t, orderSpec{center: c1, start: at(0, 0).AddDate(0, 0, -3),
		expectedEnd: ptr(at(8, 0).AddDate(0, 0, -1)), priority: order.PriorityCritical})
	require.NoError(t, overdueUrgent.UpdateProgress(decimal.NewFromInt(50)))

	closedHigh := makeOrder(t, orderSpec{center: c1, start: at(6, 0), expectedEnd: ptr(at(9, 0)),
		priority: order.PriorityHigh})
	require.NoError(t, closedHigh.UpdateProgress(decimal.NewFromInt(100)))
	_, err := closer.Apply(closedHigh, order.Closed)
	require.NoError(t, err)

	later := makeOrder(t, orderSpec{center: c2, start: at(8, 0).AddDate(0, 0, 10)})

	m := calc.Aggregate([]*order.Order{overdueUrgent, closedHigh, later})

	assert.Equal(t, 3, m.Total)
	assert.Equal(t, 1, m.Urgent)
	assert.Equal(t, 1, m.Overdue)
	assert.Equal(t, 2, m.ByState[order.Issued])
	assert.Equal(t, 1, m.ByState[order.Closed])
	assert.Equal(t, 1, m.ByLateness[services.DueToday])
	assert.Equal(t, 1, m.ByLateness[services.NoDeadline])
	assert.Equal(t, now, m.GeneratedAt)

	require.Contains(t, m.ByCenter, c1)
	assert.Equal(t, 2, m.ByCenter[c1].Total)
	assert.Equal(t, 1, m.ByCenter[c1].Open)
	assert.Equal(t, "75.00", m.ByCenter[c1].AverageCompletion.StringFixed(2))
	assert.Equal(t, 1, m.ByCenter[c2].Total)
	assert.True(t, m.ByCenter[c2].AverageCompletion.IsZero())

	assert.Equal(t, "300", m.OrderedQuantity.String())
	assert.Equal(t, "150", m.ProducedQuantity.String())
}

func TestMetricsCalculator_Empty(t *testing.T) {
	m := services.NewMetricsCalculator(kernel.NewFixedClock(at(0, 0)), nil).Aggregate(nil)

	assert.Zero(t, m.Total)
	assert.Empty(t, m.ByCenter)
	assert.True(t, m.OrderedQuantity.IsZero())
}
