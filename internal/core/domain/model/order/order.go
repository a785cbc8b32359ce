package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	hundred = decimal.NewFromInt(100)
)

// Details carries the attributes supplied when an order is issued or restored.
// A zero Priority means PriorityNormal.
type Details struct {
	Article         Article
	OrderedQuantity decimal.Decimal
	CycleTime       float64
	Setup           *Setup
	WorkCenterID    kernel.UUID
	OperationTypeID kernel.UUID
	OperatorID      *kernel.UUID
	Start           time.Time
	ExpectedEnd     *time.Time
	Priority        Priority
	Notes           string
}

// Order is a production order: a quantity of an article to be made on one work
// center within a time window. It is the aggregate root for scheduling.
//
// Invariants:
//   - start is always set
//   - ordered and produced quantities are never negative
//   - the authoritative end is the actual end while Closed, the expected end otherwise
//   - produced quantity starts at zero and status starts at Issued
type Order struct {
	id  kernel.UUID
	key BusinessKey

	article         Article
	orderedQuantity decimal.Decimal
	// producedQuantity may exceed orderedQuantity.
	producedQuantity decimal.Decimal
	cycleTime        float64
	setup            *Setup

	workCenterID    kernel.UUID
	operationTypeID kernel.UUID
	operatorID      *kernel.UUID

	start       time.Time
	expectedEnd *time.Time
	actualEnd   *time.Time

	priority Priority
	status   Status
	notes    string

	// version is the optimistic concurrency token owned by persistence.
	version int64

	isConstructed bool
}

// NewOrder issues a new order in state Issued with nothing produced.
// An expected end before start is rejected with an InvalidWindowError.
func NewOrder(id kernel.UUID, key BusinessKey, d Details) (*Order, error) {
	o := &Order{
		status:           Issued,
		producedQuantity: decimal.Zero,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setKey(key),
		o.setDetails(d),
	); err != nil {
		return nil, err
	}

	if o.expectedEnd != nil && o.expectedEnd.Before(o.start) {
		return nil, errs.NewInvalidWindowError(o.start, *o.expectedEnd)
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. Stored windows are taken as-is;
// Window clamps an end preceding the start.
func RestoreOrder(
	id kernel.UUID,
	key BusinessKey,
	d Details,
	status Status,
	producedQuantity decimal.Decimal,
	actualEnd *time.Time,
	version int64,
) (*Order, error) {
	o := &Order{isConstructed: true, version: version}

	if err := errors.Join(
		o.setID(id),
		o.setKey(key),
		o.setDetails(d),
		o.setStatus(status),
		o.setProducedQuantity(producedQuantity),
	); err != nil {
		return nil, err
	}
	o.actualEnd = utcPtr(actualEnd)

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                   { return o.id }
func (o *Order) Key() BusinessKey                  { return o.key }
func (o *Order) Article() Article                  { return o.article }
func (o *Order) OrderedQuantity() decimal.Decimal  { return o.orderedQuantity }
func (o *Order) ProducedQuantity() decimal.Decimal { return o.producedQuantity }
func (o *Order) CycleTime() float64                { return o.cycleTime }
func (o *Order) Setup() *Setup                     { return o.setup }
func (o *Order) WorkCenterID() kernel.UUID         { return o.workCenterID }
func (o *Order) OperationTypeID() kernel.UUID      { return o.operationTypeID }
func (o *Order) OperatorID() *kernel.UUID          { return o.operatorID }
func (o *Order) Start() time.Time                  { return o.start }
func (o *Order) ExpectedEnd() *time.Time           { return o.expectedEnd }
func (o *Order) ActualEnd() *time.Time             { return o.actualEnd }
func (o *Order) Priority() Priority                { return o.priority }
func (o *Order) Status() Status                    { return o.status }
func (o *Order) Notes() string                     { return o.notes }
func (o *Order) Version() int64                    { return o.version }

// AuthoritativeEnd is the actual end for Closed orders and the expected end otherwise.
func (o *Order) AuthoritativeEnd() *time.Time {
	if o.status == Closed {
		return o.actualEnd
	}
	return o.expectedEnd
}

// Window is the calendar footprint of the order: [start, authoritative end), or a
// point reservation at start when there is no usable end.
func (o *Order) Window() kernel.TimeWindow {
	end := o.AuthoritativeEnd()
	if end != nil && end.Before(o.start) {
		end = nil
	}

	w, err := kernel.NewTimeWindow(o.start, end)
	if err != nil {
		// start is guaranteed by construction
		w, _ = kernel.NewPointWindow(o.start)
	}
	return w
}

// IsUrgent reports an open order with high or critical priority.
func (o *Order) IsUrgent() bool {
	return o.priority.IsUrgent() && o.status != Closed
}

// CompletionPercentage is produced/ordered*100 rounded to two decimals, or zero when
// nothing was ordered.
func (o *Order) CompletionPercentage() decimal.Decimal {
	if o.orderedQuantity.IsZero() {
		return decimal.Zero
	}
	return o.producedQuantity.Div(o.orderedQuantity).Mul(hundred).Round(2)
}

// Reschedule places the order on centerID over [start, end). A nil end makes it a
// point reservation. Closed orders also take end as their actual end.
func (o *Order) Reschedule(centerID kernel.UUID, start time.Time, end *time.Time) error {
	if err := centerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("work center id", err)
	}
	if start.IsZero() {
		return errs.NewValueIsRequiredError("start")
	}
	if end != nil && end.Before(start) {
		return errs.NewInvalidWindowError(start, *end)
	}

	o.workCenterID = centerID
	o.start = start.UTC()
	o.expectedEnd = utcPtr(end)
	if o.status == Closed && end != nil {
		o.actualEnd = utcPtr(end)
	}

	return nil
}

// UpdateProgress records the produced quantity. Over-production is accepted.
func (o *Order) UpdateProgress(produced decimal.Decimal) error {
	return o.setProducedQuantity(produced)
}

func (o *Order) UpdateNotes(notes string) {
	o.notes = strings.TrimSpace(notes)
}

// AssignOperator sets or, with nil, clears the operator.
func (o *Order) AssignOperator(operatorID *kernel.UUID) error {
	if operatorID != nil {
		if err := operatorID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("operator id", err)
		}
		id := *operatorID
		o.operatorID = &id
		return nil
	}
	o.operatorID = nil
	return nil
}

func (o *Order) ChangePriority(p Priority) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.priority = p
	return nil
}

// AdvanceVersion is called by persistence after a successful save.
func (o *Order) AdvanceVersion() {
	o.version++
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	o.id = id
	return nil
}

func (o *Order) setKey(key BusinessKey) error {
	if key.IsZero() {
		return errs.NewValueIsRequiredError("business key")
	}
	o.key = key
	return nil
}

func (o *Order) setDetails(d Details) error {
	var errList []error

	if err := d.Article.Validate(); err != nil {
		errList = append(errList, err)
	}
	if d.OrderedQuantity.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("ordered quantity",
			fmt.Errorf("%s is negative", d.OrderedQuantity)))
	}
	if d.CycleTime < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("cycle time",
			fmt.Errorf("%g is negative", d.CycleTime)))
	}
	if err := d.WorkCenterID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("work center id", err))
	}
	if err := d.OperationTypeID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("operation type id", err))
	}
	if d.Start.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("start"))
	}

	priority := d.Priority
	if priority == 0 {
		priority = PriorityNormal
	}
	if err := priority.Validate(); err != nil {
		errList = append(errList, err)
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}

	o.article = d.Article
	o.orderedQuantity = d.OrderedQuantity
	o.cycleTime = d.CycleTime
	o.setup = d.Setup
	o.workCenterID = d.WorkCenterID
	o.operationTypeID = d.OperationTypeID
	o.start = d.Start.UTC()
	o.expectedEnd = utcPtr(d.ExpectedEnd)
	o.priority = priority
	o.notes = strings.TrimSpace(d.Notes)

	return o.AssignOperator(d.OperatorID)
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}

func (o *Order) setProducedQuantity(q decimal.Decimal) error {
	if q.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("produced quantity", fmt.Errorf("%s is negative", q))
	}
	o.producedQuantity = q
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
