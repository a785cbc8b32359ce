package services

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/errs"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 50
)

// OrderFilter selects orders. Zero fields do not filter; date bounds are inclusive.
type OrderFilter struct {
	States          []order.Status
	OperatorID      *kernel.UUID
	CenterID        *kernel.UUID
	OperationTypeID *kernel.UUID
	// ArticleCode matches as a case-insensitive substring.
	ArticleCode     string
	Priority        *order.Priority
	StartFrom       *time.Time
	StartTo         *time.Time
	ExpectedEndFrom *time.Time
	ExpectedEndTo   *time.Time
}

// Matches reports whether o satisfies every set criterion.
func (f OrderFilter) Matches(o *order.Order) bool {
	if len(f.States) > 0 && !slices.Contains(f.States, o.Status()) {
		return false
	}
	if f.OperatorID != nil && (o.OperatorID() == nil || !o.OperatorID().IsEqual(*f.OperatorID)) {
		return false
	}
	if f.CenterID != nil && !o.WorkCenterID().IsEqual(*f.CenterID) {
		return false
	}
	if f.OperationTypeID != nil && !o.OperationTypeID().IsEqual(*f.OperationTypeID) {
		return false
	}
	if f.ArticleCode != "" &&
		!strings.Contains(strings.ToLower(o.Article().Code()), strings.ToLower(f.ArticleCode)) {
		return false
	}
	if f.Priority != nil && o.Priority() != *f.Priority {
		return false
	}
	if !inRange(o.Start(), f.StartFrom, f.StartTo) {
		return false
	}
	if f.ExpectedEndFrom != nil || f.ExpectedEndTo != nil {
		if o.ExpectedEnd() == nil || !inRange(*o.ExpectedEnd(), f.ExpectedEndFrom, f.ExpectedEndTo) {
			return false
		}
	}
	return true
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

// SortField is a sortable order attribute. Derived figures are not sortable.
type SortField int

const (
	SortByStart SortField = iota
	SortByExpectedEnd
	SortByPriority
	SortByArticleCode
	SortByBusinessKey
)

var sortFieldNames = map[string]SortField{
	"start":       SortByStart,
	"expectedEnd": SortByExpectedEnd,
	"priority":    SortByPriority,
	"articleCode": SortByArticleCode,
	"businessKey": SortByBusinessKey,
}

// ParseSortField maps an external sort key; the empty string means SortByStart.
func ParseSortField(name string) (SortField, error) {
	if name == "" {
		return SortByStart, nil
	}
	if f, ok := sortFieldNames[name]; ok {
		return f, nil
	}
	return SortByStart, errs.NewValueIsInvalidErrorWithCause("sort", fmt.Errorf("%q is not a sortable field", name))
}

// Sort orders the result. The zero value is start, descending.
type Sort struct {
	Field     SortField
	Ascending bool
}

// Page is 1-indexed. Non-positive values fall back to the defaults.
type Page struct {
	Number int
	Size   int
}

func (p Page) normalized() Page {
	if p.Number <= 0 {
		p.Number = DefaultPage
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	return p
}

// QueryResult is one page of a filtered and sorted order set.
type QueryResult struct {
	Items      []*order.Order
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// QueryIndex filters, sorts and paginates an order set. It never mutates the input.
type QueryIndex struct{}

func NewQueryIndex() QueryIndex {
	return QueryIndex{}
}

// Query returns the requested page. Pages past the end are empty, not errors.
// Ties on the sort key are broken by order id so pages are stable.
func (QueryIndex) Query(orders []*order.Order, filter OrderFilter, sorting Sort, page Page) QueryResult {
	page = page.normalized()

	matched := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if filter.Matches(o) {
			matched = append(matched, o)
		}
	}

	slices.SortFunc(matched, func(a, b *order.Order) int {
		if c := compareBy(sorting, a, b); c != 0 {
			return c
		}
		return a.ID().Compare(b.ID())
	})

	total := len(matched)
	result := QueryResult{
		Items:      []*order.Order{},
		Total:      total,
		Page:       page.Number,
		PageSize:   page.Size,
		TotalPages: total / page.Size,
	}
	if total%page.Size != 0 {
		result.TotalPages++
	}

	// Compare page indexes before multiplying so huge page numbers cannot overflow.
	if total == 0 || page.Number-1 > (total-1)/page.Size {
		return result
	}
	from := (page.Number - 1) * page.Size
	to := total
	if total-from > page.Size {
		to = from + page.Size
	}
	result.Items = matched[from:to]

	return result
}

func compareBy(sorting Sort, a, b *order.Order) int {
	var c int
	switch sorting.Field {
	case SortByExpectedEnd:
		return compareOptionalTime(a.ExpectedEnd(), b.ExpectedEnd(), sorting.Ascending)
	case SortByPriority:
		c = cmp.Compare(a.Priority(), b.Priority())
	case SortByArticleCode:
		c = strings.Compare(a.Article().Code(), b.Article().Code())
	case SortByBusinessKey:
		c = a.Key().Compare(b.Key())
	default:
		c = a.Start().Compare(b.Start())
	}
	if !sorting.Ascending {
		return -c
	}
	return c
}

// compareOptionalTime places missing times after every present one, whatever
// the direction.
func compareOptionalTime(a, b *time.Time, ascending bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case ascending:
		return a.Compare(*b)
	default:
		return b.Compare(*a)
	}
}
