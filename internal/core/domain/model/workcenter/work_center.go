package workcenter

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
	// ErrDescriptionIsRequired is returned when a work center has no description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	// ErrWorkCenterIsNotConstructed is returned when using an improperly initialized WorkCenter.
	ErrWorkCenterIsNotConstructed = errors.New("WorkCenter must be created via NewWorkCenter constructor")
)

// Attributes are the editable properties of a work center.
type Attributes struct {
	Code        string
	Description string
	Active      bool
	// HourlyCapacity is advisory; the calendar never enforces it.
	HourlyCapacity   *int
	StandardHourCost *decimal.Decimal
	Notes            string
}

// WorkCenter is a schedulable production resource. Orders reference it by id and
// it cannot be deleted while any order does.
type WorkCenter struct {
	id         kernel.UUID
	attributes Attributes
	createdAt  time.Time
	modifiedAt time.Time

	isConstructed bool
}

// NewWorkCenter creates a work center stamped with now as both creation and modification time.
func NewWorkCenter(id kernel.UUID, attrs Attributes, now time.Time) (*WorkCenter, error) {
	wc := &WorkCenter{isConstructed: true}

	if err := errors.Join(wc.setID(id), wc.setAttributes(attrs)); err != nil {
		return nil, err
	}
	wc.createdAt = now.UTC()
	wc.modifiedAt = wc.createdAt

	return wc, nil
}

// RestoreWorkCenter rebuilds a work center from storage.
func RestoreWorkCenter(id kernel.UUID, attrs Attributes, createdAt, modifiedAt time.Time) (*WorkCenter, error) {
	wc := &WorkCenter{isConstructed: true}

	if err := errors.Join(wc.setID(id), wc.setAttributes(attrs)); err != nil {
		return nil, err
	}
	wc.createdAt = createdAt.UTC()
	wc.modifiedAt = modifiedAt.UTC()

	return wc, nil
}

func (w *WorkCenter) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkCenterIsNotConstructed
	}
	return nil
}

func (w *WorkCenter) ID() kernel.UUID                    { return w.id }
func (w *WorkCenter) Code() string                       { return w.attributes.Code }
func (w *WorkCenter) Description() string                { return w.attributes.Description }
func (w *WorkCenter) IsActive() bool                     { return w.attributes.Active }
func (w *WorkCenter) HourlyCapacity() *int               { return w.attributes.HourlyCapacity }
func (w *WorkCenter) StandardHourCost() *decimal.Decimal { return w.attributes.StandardHourCost }
func (w *WorkCenter) Notes() string                      { return w.attributes.Notes }
func (w *WorkCenter) CreatedAt() time.Time               { return w.createdAt }
func (w *WorkCenter) ModifiedAt() time.Time              { return w.modifiedAt }

// Update replaces the attributes and bumps the modification time.
func (w *WorkCenter) Update(attrs Attributes, now time.Time) error {
	if err := w.setAttributes(attrs); err != nil {
		return err
	}
	w.modifiedAt = now.UTC()
	return nil
}

// CostOf is the standard cost of running the center for d, zero when no cost is set.
func (w *WorkCenter) CostOf(d time.Duration) decimal.Decimal {
	if w.attributes.StandardHourCost == nil || d <= 0 {
		return decimal.Zero
	}
	hours := decimal.NewFromInt(int64(d)).Div(decimal.NewFromInt(int64(time.Hour)))
	return w.attributes.StandardHourCost.Mul(hours).Round(2)
}

func (w *WorkCenter) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	w.id = id
	return nil
}

func (w *WorkCenter) setAttributes(attrs Attributes) error {
	attrs.Code = strings.TrimSpace(attrs.Code)
	attrs.Description = strings.TrimSpace(attrs.Description)
	attrs.Notes = strings.TrimSpace(attrs.Notes)

	var errList []error
	if attrs.Description == "" {
		errList = append(errList, ErrDescriptionIsRequired)
	}
	if attrs.HourlyCapacity != nil && *attrs.HourlyCapacity < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("hourly capacity",
			fmt.Errorf("%d is negative", *attrs.HourlyCapacity)))
	}
	if attrs.StandardHourCost != nil && attrs.StandardHourCost.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("standard hour cost",
			fmt.Errorf("%s is negative", attrs.StandardHourCost)))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	w.attributes = attrs
	return nil
}
