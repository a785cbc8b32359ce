package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"production/internal/pkg/errs"
	"production/internal/pkg/guard"
)

// Article is the item an order produces.
type Article struct {
	code          string
	description   string
	unitOfMeasure string

	guard guard.ConstructorGuard
}

// NewArticle requires a code; description and unit of measure are free text.
func NewArticle(code, description, unitOfMeasure string) (Article, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Article{}, errs.NewValueIsRequiredError("article code")
	}

	return Article{
		code:          code,
		description:   strings.TrimSpace(description),
		unitOfMeasure: strings.TrimSpace(unitOfMeasure),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (a Article) Validate() error {
	return a.guard.Validate(errs.NewValueIsRequiredError("article"))
}

func (a Article) Code() string          { return a.code }
func (a Article) Description() string   { return a.description }
func (a Article) UnitOfMeasure() string { return a.unitOfMeasure }

// Setup is the optional machine preparation preceding the run.
type Setup struct {
	start    time.Time
	duration time.Duration
}

func NewSetup(start time.Time, duration time.Duration) (Setup, error) {
	var errList []error
	if start.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("setup start"))
	}
	if duration < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("setup duration",
			fmt.Errorf("%s is negative", duration)))
	}
	if err := errors.Join(errList...); err != nil {
		return Setup{}, err
	}

	return Setup{start: start.UTC(), duration: duration}, nil
}

func (s Setup) Start() time.Time        { return s.start }
func (s Setup) Duration() time.Duration { return s.duration }
