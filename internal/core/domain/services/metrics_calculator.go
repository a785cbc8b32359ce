package services

import (
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Lateness classifies an order's expected end against today.
type Lateness int

const (
	NoDeadline Lateness = iota
	Overdue
	DueToday
	UpcomingWithin7Days
	ScheduledLater
	// Completed is a Closed order whose expected end has passed.
	Completed
)

const upcomingDays = 7

func (l Lateness) String() string {
	switch l {
	case Overdue:
		return "OVERDUE"
	case DueToday:
		return "DUE_TODAY"
	case UpcomingWithin7Days:
		return "UPCOMING_7_DAYS"
	case ScheduledLater:
		return "SCHEDULED_LATER"
	case Completed:
		return "COMPLETED"
	default:
		return "NO_DEADLINE"
	}
}

// OrderMetrics are the figures derived for a single order.
type OrderMetrics struct {
	OrderID              kernel.UUID
	CompletionPercentage decimal.Decimal
	Lateness             Lateness
	Urgent               bool
}

// CenterStats aggregates the orders of one work center.
type CenterStats struct {
	CenterID          kernel.UUID
	Total             int
	Open              int
	AverageCompletion decimal.Decimal
}

// DashboardMetrics aggregates an order set.
type DashboardMetrics struct {
	Total            int
	ByState          map[order.Status]int
	ByCenter         map[kernel.UUID]CenterStats
	ByLateness       map[Lateness]int
	Urgent           int
	Overdue          int
	OrderedQuantity  decimal.Decimal
	ProducedQuantity decimal.Decimal
	GeneratedAt      time.Time
}

// MetricsCalculator derives read-only figures from orders. It holds no state besides
// its clock and the location that defines calendar days.
type MetricsCalculator struct {
	clock    kernel.Clock
	location *time.Location
}

// NewMetricsCalculator falls back to UTC when location is nil.
func NewMetricsCalculator(clock kernel.Clock, location *time.Location) *MetricsCalculator {
	if location == nil {
		location = time.UTC
	}
	return &MetricsCalculator{clock: clock, location: location}
}

func (m *MetricsCalculator) CompletionPercentage(o *order.Order) decimal.Decimal {
	return o.CompletionPercentage()
}

// Lateness compares the expected end with today at day granularity.
func (m *MetricsCalculator) Lateness(o *order.Order) Lateness {
	return m.lateness(o, m.day(m.clock.Now()))
}

func (m *MetricsCalculator) ForOrder(o *order.Order) OrderMetrics {
	return m.forOrder(o, m.day(m.clock.Now()))
}

// Aggregate computes the dashboard figures for orders.
func (m *MetricsCalculator) Aggregate(orders []*order.Order) DashboardMetrics {
	now := m.clock.Now()
	today := m.day(now)

	result := DashboardMetrics{
		Total:            len(orders),
		ByState:          make(map[order.Status]int),
		ByCenter:         make(map[kernel.UUID]CenterStats),
		ByLateness:       make(map[Lateness]int),
		OrderedQuantity:  decimal.Zero,
		ProducedQuantity: decimal.Zero,
		GeneratedAt:      now,
	}
	completionSums := make(map[kernel.UUID]decimal.Decimal)

	for _, o := range orders {
		om := m.forOrder(o, today)

		result.ByState[o.Status()]++
		result.ByLateness[om.Lateness]++
		if om.Urgent {
			result.Urgent++
		}
		if om.Lateness == Overdue {
			result.Overdue++
		}
		result.OrderedQuantity = result.OrderedQuantity.Add(o.OrderedQuantity())
		result.ProducedQuantity = result.ProducedQuantity.Add(o.ProducedQuantity())

		center := o.WorkCenterID()
		stats := result.ByCenter[center]
		stats.CenterID = center
		stats.Total++
		if o.Status() != order.Closed {
			stats.Open++
		}
		result.ByCenter[center] = stats
		completionSums[center] = completionSums[center].Add(om.CompletionPercentage)
	}

	for center, stats := range result.ByCenter {
		stats.AverageCompletion = completionSums[center].
			Div(decimal.NewFromInt(int64(stats.Total))).
			Round(2)
		result.ByCenter[center] = stats
	}

	return result
}

func (m *MetricsCalculator) forOrder(o *order.Order, today time.Time) OrderMetrics {
	return OrderMetrics{
		OrderID:              o.ID(),
		CompletionPercentage: o.CompletionPercentage(),
		Lateness:             m.lateness(o, today),
		Urgent:               o.IsUrgent(),
	}
}

func (m *MetricsCalculator) lateness(o *order.Order, today time.Time) Lateness {
	expected := o.ExpectedEnd()
	if expected == nil {
		return NoDeadline
	}

	due := m.day(*expected)
	switch {
	case due.Before(today):
		if o.Status() == order.Closed {
			return Completed
		}
		return Overdue
	case due.Equal(today):
		return DueToday
	case !due.After(today.AddDate(0, 0, upcomingDays)):
		return UpcomingWithin7Days
	default:
		return ScheduledLater
	}
}

func (m *MetricsCalculator) day(t time.Time) time.Time {
	y, mo, d := t.In(m.location).Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, m.location)
}
