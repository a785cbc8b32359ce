package queries

import (
	"errors"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"
	"production/internal/pkg/guard"
)

var ErrGetCenterConflictsQueryIsNotConstructed = errors.New(
	"GetCenterConflictsQuery must be created via NewGetCenterConflictsQuery constructor",
)

// GetCenterConflictsQuery asks which orders occupy a work center during a window.
// An excluded order is left out, which previews a drag of that order onto the window.
type GetCenterConflictsQuery struct {
	centerID kernel.UUID
	window   kernel.TimeWindow
	exclude  *kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetCenterConflictsQuery(
	centerID kernel.UUID,
	start time.Time,
	end *time.Time,
	exclude *kernel.UUID,
) (GetCenterConflictsQuery, error) {
	var errList []error
	if err := centerID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("center id", err))
	}
	if exclude != nil {
		if err := exclude.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("excluded order id", err))
		}
	}
	window, err := kernel.NewTimeWindow(start, end)
	if err != nil {
		errList = append(errList, err)
	}
	if err = errors.Join(errList...); err != nil {
		return GetCenterConflictsQuery{}, err
	}

	return GetCenterConflictsQuery{
		centerID: centerID,
		window:   window,
		exclude:  exclude,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetCenterConflictsQuery) Validate() error {
	return q.guard.Validate(ErrGetCenterConflictsQueryIsNotConstructed)
}

func (q GetCenterConflictsQuery) CenterID() kernel.UUID     { return q.centerID }
func (q GetCenterConflictsQuery) Window() kernel.TimeWindow { return q.window }
func (q GetCenterConflictsQuery) Exclude() *kernel.UUID     { return q.exclude }
