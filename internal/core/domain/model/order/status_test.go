package order_test

import (
	"testing"

	"production/internal/core/domain/model/order"
	"production/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		code     string
		expected order.Status
	}{
		{"ISSUED", order.Issued},
		{"in_progress", order.InProgress},
		{" Suspended ", order.Suspended},
		{"URGENT", order.Urgent},
		{"CLOSED", order.Closed},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			s, err := order.ParseStatus(tc.code)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, s)
		})
	}

	t.Run("should fail with unknown code", func(t *testing.T) {
		s, err := order.ParseStatus("ARCHIVED")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUnknownState)
		assert.Equal(t, order.Unknown, s)
	})
}

func TestStatus_Attributes(t *testing.T) {
	t.Run("only Closed is terminal", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			assert.Equal(t, s == order.Closed, s.IsTerminal(), s.String())
			assert.Equal(t, s != order.Closed, s.IsActive(), s.String())
		}
	})

	t.Run("statuses are listed in display order", func(t *testing.T) {
		assert.Equal(t, []order.Status{
			order.Issued, order.InProgress, order.Suspended, order.Urgent, order.Closed,
		}, order.AllStatuses())
	})

	t.Run("code round-trips through ParseStatus", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			parsed, err := order.ParseStatus(s.Code())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
			assert.NotEmpty(t, s.Color())
		}
	})

	t.Run("unknown status is invalid", func(t *testing.T) {
		assert.Error(t, order.Unknown.Validate())
		assert.Error(t, order.Status(42).Validate())
		assert.Equal(t, "Unknown", order.Status(42).String())
		assert.Equal(t, "UNKNOWN", order.Unknown.Code())
	})
}

func TestDefaultStateInfos(t *testing.T) {
	infos := order.DefaultStateInfos()

	require.Len(t, infos, 5)
	assert.Equal(t, "ISSUED", infos[0].Code)
	assert.Equal(t, 1, infos[0].DisplayOrder)
	assert.True(t, infos[0].Active)
	assert.Equal(t, order.Closed, infos[4].Status)
	assert.False(t, infos[4].Active)
}

func TestPriority(t *testing.T) {
	t.Run("should accept 1 to 5", func(t *testing.T) {
		for v := 1; v <= 5; v++ {
			p, err := order.NewPriority(v)
			require.NoError(t, err)
			assert.Equal(t, order.Priority(v), p)
		}
	})

	t.Run("should reject out of range", func(t *testing.T) {
		for _, v := range []int{0, 6, -1} {
			_, err := order.NewPriority(v)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("high and critical are urgent", func(t *testing.T) {
		assert.False(t, order.PriorityNormal.IsUrgent())
		assert.True(t, order.PriorityHigh.IsUrgent())
		assert.True(t, order.PriorityCritical.IsUrgent())
		assert.Equal(t, "Normal", order.PriorityNormal.String())
	})
}

func TestNewBusinessKey(t *testing.T) {
	t.Run("should build a key", func(t *testing.T) {
		k, err := order.NewBusinessKey("ODP", 2025, "A", 123, 1)

		require.NoError(t, err)
		assert.Equal(t, "ODP/2025/A/123/1", k.String())
		assert.False(t, k.IsZero())
	})

	t.Run("should report every invalid component", func(t *testing.T) {
		_, err := order.NewBusinessKey(" ", 12, "", 0, -1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "number")
		assert.Contains(t, err.Error(), "line")
	})

	t.Run("should compare component by component", func(t *testing.T) {
		a, _ := order.NewBusinessKey("ODP", 2025, "A", 1, 2)
		b, _ := order.NewBusinessKey("ODP", 2025, "A", 2, 1)

		assert.Negative(t, a.Compare(b))
		assert.Positive(t, b.Compare(a))
		assert.Zero(t, a.Compare(a))
	})
}
