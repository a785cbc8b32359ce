package order

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"production/internal/pkg/errs"
)

// BusinessKey is the composite key production orders are known by on the shop floor:
// order type, year, series, number and line.
type BusinessKey struct {
	orderType string
	year      int
	series    string
	number    int
	line      int
}

// NewBusinessKey validates every component; series may be empty.
func NewBusinessKey(orderType string, year int, series string, number, line int) (BusinessKey, error) {
	key := BusinessKey{
		orderType: strings.TrimSpace(orderType),
		year:      year,
		series:    strings.TrimSpace(series),
		number:    number,
		line:      line,
	}

	var errList []error
	if key.orderType == "" {
		errList = append(errList, errs.NewValueIsRequiredError("order type"))
	}
	if year < 1900 || year > 9999 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("year", year, 1900, 9999))
	}
	if number <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%d is not greater than 0", number)))
	}
	if line <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("line", fmt.Errorf("%d is not greater than 0", line)))
	}
	if err := errors.Join(errList...); err != nil {
		return BusinessKey{}, err
	}

	return key, nil
}

func (k BusinessKey) Type() string   { return k.orderType }
func (k BusinessKey) Year() int      { return k.year }
func (k BusinessKey) Series() string { return k.series }
func (k BusinessKey) Number() int    { return k.number }
func (k BusinessKey) Line() int      { return k.line }

func (k BusinessKey) IsZero() bool {
	return k == BusinessKey{}
}

// Compare orders keys component by component.
func (k BusinessKey) Compare(other BusinessKey) int {
	return cmp.Or(
		cmp.Compare(k.orderType, other.orderType),
		cmp.Compare(k.year, other.year),
		cmp.Compare(k.series, other.series),
		cmp.Compare(k.number, other.number),
		cmp.Compare(k.line, other.line),
	)
}

func (k BusinessKey) String() string {
	return fmt.Sprintf("%s/%d/%s/%d/%d", k.orderType, k.year, k.series, k.number, k.line)
}
