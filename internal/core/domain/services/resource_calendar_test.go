package services_test

import (
	"sync"
	"testing"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceCalendar_Insert(t *testing.T) {
	t.Run("overlapping orders are both kept and the conflict reported", func(t *testing.T) {
		cal := services.NewResourceCalendar()
		c1 := kernel.NewUUID()
		o1, o2 := kernel.NewUUID(), kernel.NewUUID()

		conflicts, ok := cal.Insert(c1, o1, window(t, at(8, 0), ptr(at(10, 0))))
		require.True(t, ok)
		assert.Empty(t, conflicts)

		conflicts, ok = cal.Insert(c1, o2, window(t, at(9, 0), ptr(at(11, 0))))

		require.True(t, ok)
		assert.Equal(t, []kernel.UUID{o1}, conflicts)
		assert.Len(t, cal.Entries(c1), 2)
	})

	t.Run("touching windows do not conflict", func(t *testing.T) {
		cal := services.NewResourceCalendar()
		c1 := kernel.NewUUID()
		cal.Insert(c1, kernel.NewUUID(), window(t, at(8, 0), ptr(at(10, 0))))

		conflicts, _ := cal.Insert(c1, kernel.NewUUID(), window(t, at(10, 0), ptr(at(12, 0))))

		assert.Empty(t, conflicts)
	})

	t.Run("re-inserting an order replaces its reservation", func(t *testing.T) {
		cal := services.NewResourceCalendar()
		c1, c2 := kernel.NewUUID(), kernel.NewUUID()
		o1 := kernel.NewUUID()
		cal.Insert(c1, o1, window(t, at(8, 0), ptr(at(10, 0))))

		cal.Insert(c2, o1, window(t, at(12, 0), nil))

		assert.Empty(t, cal.Entries(c1))
		p, ok := cal.Placement(o1)
		require.True(t, ok)
		assert.True(t, p.CenterID.IsEqual(c2))
		assert.True(t, p.Window.IsPoint())
		assert.Equal(t, 1, cal.Len())
	})

	t.Run("entries are ordered by start", func(t *testing.T) {
		cal := services.NewResourceCalendar()
		c1 := kernel.NewUUID()
		late, early := kernel.NewUUID(), kernel.NewUUID()
		cal.Insert(c1, late, window(t, at(14, 0), nil))
		cal.Insert(c1, early, window(t, at(6, 0), ptr(at(7, 0))))

		entries := cal.Entries(c1)

		require.Len(t, entries, 2)
		assert.True(t, entries[0].OrderID.IsEqual(early))
		assert.True(t, entries[1].OrderID.IsEqual(late))
	})
}

func TestResourceCalendar_ConflictsFor(t *testing.T) {
	cal := services.NewResourceCalendar()
	c1 := kernel.NewUUID()
	interval, point := kernel.NewUUID(), kernel.NewUUID()
	cal.Insert(c1, interval, window(t, at(8, 0), ptr(at(10, 0))))
	cal.Insert(c1, point, window(t, at(12, 0), nil))

	testCases := []struct {
		name     string
		query    kernel.TimeWindow
		expected []kernel.UUID
	}{
		{"inside interval", window(t, at(9, 0), ptr(at(9, 30))), []kernel.UUID{interval}},
		{"point at interval start", window(t, at(8, 0), nil), []kernel.UUID{interval}},
		{"point at interval end", window(t, at(10, 0), nil), []kernel.UUID{}},
		{"interval covering point", window(t, at(11, 0), ptr(at(13, 0))), []kernel.UUID{point}},
		{"interval ending at point", window(t, at(11, 0), ptr(at(12, 0))), []kernel.UUID{}},
		{"same point", window(t, at(12, 0), nil), []kernel.UUID{point}},
		{"whole day", window(t, at(0, 0), ptr(at(23, 0))), []kernel.UUID{interval, point}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ElementsMatch(t, tc.expected, cal.ConflictsFor(c1, tc.query))
		})
	}

	t.Run("other center is empty", func(t *testing.T) {
		assert.Empty(t, cal.ConflictsFor(kernel.NewUUID(), window(t, at(0, 0), ptr(at(23, 0)))))
	})

	t.Run("excluding drops the given order", func(t *testing.T) {
		assert.Equal(t, []kernel.UUID{point},
			cal.ConflictsExcluding(c1, window(t, at(0, 0), ptr(at(23, 0))), interval))
	})
	t.Run("entries carry the reserved windows in calendar order", func(t *testing.T) {
		whole := window(t, at(0, 0), ptr(at(23, 0)))

		entries := cal.ConflictEntries(c1, whole, nil)

		require.Len(t, entries, 2)
		assert.Equal(t, interval, entries[0].OrderID)
		assert.True(t, entries[0].Window.IsEqual(window(t, at(8, 0), ptr(at(10, 0)))))
		assert.Equal(t, point, entries[1].OrderID)
		assert.Equal(t, c1, entries[1].CenterID)

		excluded := cal.ConflictEntries(c1, whole, &interval)
		require.Len(t, excluded, 1)
		assert.Equal(t, point, excluded[0].OrderID)
	})
}

func TestResourceCalendar_MoveAndRemove(t *testing.T) {
	t.Run("move relocates between centers", func(t *testing.T) {
		cal := services.NewResourceCalendar()
		c1, c2 := kernel.NewUUID(), kernel.NewUUID()
		o1, other := kernel.NewUUID(), kernel.NewUUID()
		cal.Insert(c1, o1, window(t, at(8, 0), ptr(at(10, 0))))
		cal.Insert(c2, other, window(t, at(10, 30), ptr(at(12, 0))))

		conflicts := cal.Move(c1, o1, c2, window(t, at(9, 0), ptr(at(11, 0))))

		assert.Equal(t, []kernel.UUID{other}, conflicts)
		assert.Empty(t, cal.ConflictsFor(c1, window(t, at(0, 0), ptr(at(23, 0)))))
		assert.Contains(t, cal.ConflictsFor(c2, window(t, at(8, 30), ptr(at(9, 30)))), o1)
	})

	t.Run("remove ignores absent orders and other centers", func(t *testing.T) {
		cal := services.NewResourceCalendar()
		c1 := kernel.NewUUID()
		o1 := kernel.NewUUID()
		cal.Insert(c1, o1, window(t, at(8, 0), nil))

		cal.Remove(c1, kernel.NewUUID())
		cal.Remove(kernel.NewUUID(), o1)
		assert.Equal(t, 1, cal.Len())

		cal.Remove(c1, o1)
		assert.Equal(t, 0, cal.Len())
		_, ok := cal.Placement(o1)
		assert.False(t, ok)
	})

	t.Run("forget removes wherever placed", func(t *testing.T) {
		cal := services.NewResourceCalendar()
		o1 := kernel.NewUUID()
		cal.Insert(kernel.NewUUID(), o1, window(t, at(8, 0), nil))

		cal.Forget(o1)

		assert.Equal(t, 0, cal.Len())
	})
}

func TestResourceCalendar_Rebuild(t *testing.T) {
	cal := services.NewResourceCalendar()
	c1, c2 := kernel.NewUUID(), kernel.NewUUID()
	stale, o1 := kernel.NewUUID(), kernel.NewUUID()
	cal.Insert(c1, stale, window(t, at(8, 0), nil))

	cal.Rebuild([]services.CalendarEntry{
		{CenterID: c1, OrderID: o1, Window: window(t, at(8, 0), nil)},
		{CenterID: c2, OrderID: o1, Window: window(t, at(9, 0), nil)},
	})

	_, ok := cal.Placement(stale)
	assert.False(t, ok)
	p, ok := cal.Placement(o1)
	require.True(t, ok)
	assert.True(t, p.CenterID.IsEqual(c2))
	assert.Empty(t, cal.Entries(c1))
	assert.Equal(t, 1, cal.Len())
}

func TestResourceCalendar_ConcurrentMovesNeverTear(t *testing.T) {
	cal := services.NewResourceCalendar()
	c1, c2 := kernel.NewUUID(), kernel.NewUUID()
	o1 := kernel.NewUUID()
	w := window(t, at(8, 0), ptr(at(10, 0)))
	cal.Insert(c1, o1, w)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		from, to := c1, c2
		for range 500 {
			cal.Move(from, o1, to, w)
			from, to = to, from
		}
	}()

	torn := 0
	go func() {
		defer wg.Done()
		for range 500 {
			if _, ok := cal.Placement(o1); !ok {
				torn++
			}
		}
	}()
	wg.Wait()

	assert.Zero(t, torn)
	assert.Equal(t, 1, cal.Len())
}
