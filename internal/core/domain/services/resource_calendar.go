package services

import (
	"slices"
	"sync"
	"time"

	"production/internal/core/domain/model/kernel"
)

// Placement is where an order sits in the calendar.
type Placement struct {
	CenterID kernel.UUID
	Window   kernel.TimeWindow
}

// CalendarEntry is one reservation, used to rebuild the calendar in bulk.
type CalendarEntry struct {
	CenterID kernel.UUID
	OrderID  kernel.UUID
	Window   kernel.TimeWindow
}

type slot struct {
	orderID kernel.UUID
	window  kernel.TimeWindow
}

func compareSlots(a, b slot) int {
	if c := a.window.Start().Compare(b.window.Start()); c != 0 {
		return c
	}
	return a.orderID.Compare(b.orderID)
}

// ResourceCalendar keeps, per work center, the reservations of its orders ordered by
// start then order id. Overlaps are reported to callers and never rejected; an order
// is reserved on at most one center at a time.
//
// All methods are safe for concurrent use. Writes hold an exclusive lock for their
// whole duration, so readers never see an order missing from both its old and new slot.
type ResourceCalendar struct {
	mu      sync.RWMutex
	centers map[kernel.UUID][]slot
	located map[kernel.UUID]kernel.UUID
}

func NewResourceCalendar() *ResourceCalendar {
	return &ResourceCalendar{
		centers: make(map[kernel.UUID][]slot),
		located: make(map[kernel.UUID]kernel.UUID),
	}
}

// Insert reserves window on center for orderID, replacing any previous reservation
// of the same order. It returns the other orders overlapping the window; ok is always true.
func (c *ResourceCalendar) Insert(center, orderID kernel.UUID, window kernel.TimeWindow) (conflicts []kernel.UUID, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.detach(orderID)
	c.attach(center, orderID, window)

	return orderIDs(c.overlapping(center, window, &orderID)), true
}

// Remove drops the reservation of orderID on center. It is a no-op when the order
// is not reserved there.
func (c *ResourceCalendar) Remove(center, orderID kernel.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if current, ok := c.located[orderID]; ok && current == center {
		c.detach(orderID)
	}
}

// Forget drops the reservation of orderID wherever it is.
func (c *ResourceCalendar) Forget(orderID kernel.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.detach(orderID)
}

// Move relocates orderID from center to newCenter/newWindow in one step and returns
// the other orders overlapping the new window.
func (c *ResourceCalendar) Move(center, orderID, newCenter kernel.UUID, newWindow kernel.TimeWindow) []kernel.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.detachFrom(center, orderID)
	// the order may have been recorded elsewhere by a concurrent hydration
	c.detach(orderID)
	c.attach(newCenter, orderID, newWindow)

	return orderIDs(c.overlapping(newCenter, newWindow, &orderID))
}

// ConflictsFor lists every order on center whose window overlaps window.
func (c *ResourceCalendar) ConflictsFor(center kernel.UUID, window kernel.TimeWindow) []kernel.UUID {
	return entryOrderIDs(c.ConflictEntries(center, window, nil))
}

// ConflictsExcluding is ConflictsFor without orderID.
func (c *ResourceCalendar) ConflictsExcluding(center kernel.UUID, window kernel.TimeWindow, orderID kernel.UUID) []kernel.UUID {
	return entryOrderIDs(c.ConflictEntries(center, window, &orderID))
}

// ConflictEntries returns the reservations on center overlapping window, in
// calendar order. A non-nil exclude leaves that order out.
func (c *ResourceCalendar) ConflictEntries(
	center kernel.UUID,
	window kernel.TimeWindow,
	exclude *kernel.UUID,
) []CalendarEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	slots := c.overlapping(center, window, exclude)
	entries := make([]CalendarEntry, 0, len(slots))
	for _, s := range slots {
		entries = append(entries, CalendarEntry{CenterID: center, OrderID: s.orderID, Window: s.window})
	}
	return entries
}

// Placement reports where orderID is reserved.
func (c *ResourceCalendar) Placement(orderID kernel.UUID) (Placement, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	center, ok := c.located[orderID]
	if !ok {
		return Placement{}, false
	}
	for _, s := range c.centers[center] {
		if s.orderID == orderID {
			return Placement{CenterID: center, Window: s.window}, true
		}
	}
	return Placement{}, false
}

// Entries returns the reservations of center in calendar order.
func (c *ResourceCalendar) Entries(center kernel.UUID) []CalendarEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	slots := c.centers[center]
	entries := make([]CalendarEntry, 0, len(slots))
	for _, s := range slots {
		entries = append(entries, CalendarEntry{CenterID: center, OrderID: s.orderID, Window: s.window})
	}
	return entries
}

// Len is the number of reserved orders.
func (c *ResourceCalendar) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.located)
}

// Rebuild replaces the whole calendar with entries. Later duplicates of an order win.
func (c *ResourceCalendar) Rebuild(entries []CalendarEntry) {
	centers := make(map[kernel.UUID][]slot)
	located := make(map[kernel.UUID]kernel.UUID, len(entries))

	for _, e := range entries {
		if prev, ok := located[e.OrderID]; ok {
			centers[prev] = slices.DeleteFunc(centers[prev], func(s slot) bool { return s.orderID == e.OrderID })
		}
		centers[e.CenterID] = append(centers[e.CenterID], slot{orderID: e.OrderID, window: e.Window})
		located[e.OrderID] = e.CenterID
	}
	for center := range centers {
		slices.SortFunc(centers[center], compareSlots)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.centers = centers
	c.located = located
}

func (c *ResourceCalendar) attach(center, orderID kernel.UUID, window kernel.TimeWindow) {
	s := slot{orderID: orderID, window: window}
	slots := c.centers[center]
	i, _ := slices.BinarySearchFunc(slots, s, compareSlots)
	c.centers[center] = slices.Insert(slots, i, s)
	c.located[orderID] = center
}

func (c *ResourceCalendar) detach(orderID kernel.UUID) {
	if center, ok := c.located[orderID]; ok {
		c.detachFrom(center, orderID)
	}
}

func (c *ResourceCalendar) detachFrom(center, orderID kernel.UUID) {
	slots := c.centers[center]
	idx := slices.IndexFunc(slots, func(s slot) bool { return s.orderID == orderID })
	if idx < 0 {
		return
	}

	slots = slices.Delete(slots, idx, idx+1)
	if len(slots) == 0 {
		delete(c.centers, center)
	} else {
		c.centers[center] = slots
	}
	if c.located[orderID] == center {
		delete(c.located, orderID)
	}
}

// overlapping scans slots in start order and stops at the first slot that starts
// past the window.
func (c *ResourceCalendar) overlapping(center kernel.UUID, window kernel.TimeWindow, exclude *kernel.UUID) []slot {
	result := make([]slot, 0)
	for _, s := range c.centers[center] {
		if startsAfter(s.window.Start(), window) {
			break
		}
		if exclude != nil && s.orderID == *exclude {
			continue
		}
		if s.window.Overlaps(window) {
			result = append(result, s)
		}
	}
	return result
}

func entryOrderIDs(entries []CalendarEntry) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.OrderID)
	}
	return ids
}

func orderIDs(slots []slot) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(slots))
	for _, s := range slots {
		ids = append(ids, s.orderID)
	}
	return ids
}

func startsAfter(t time.Time, window kernel.TimeWindow) bool {
	if end, ok := window.End(); ok {
		return !t.Before(end)
	}
	return t.After(window.Start())
}
