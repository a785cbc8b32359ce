package errs_test

import (
	"errors"
	"testing"
	"time"

	"production/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("workCenterId", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: workCenterId, ID is: 42 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("ValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("priority", errors.New("7 is not between 1 and 5"))

		assert.Equal(t, "value is invalid: priority (cause: 7 is not between 1 and 5)", err.Error())
		assert.Equal(t, "value is invalid: priority", errs.NewValueIsInvalidError("priority").Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("ValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("description")

		assert.Equal(t, "value is required: description", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("ValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("priority", 9, 1, 5)

		assert.Equal(t, "value is out of range: 9 is priority, min value is 1, max value is 5", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("ValueIsOutOfRangeError keeps messages on one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "line one\nline two", 0, 10)

		assert.Contains(t, err.Error(), "line one line two")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestSchedulingErrors(t *testing.T) {
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)

	t.Run("InvalidWindowError", func(t *testing.T) {
		err := errs.NewInvalidWindowError(start, end)

		assert.Equal(t,
			"invalid window: end 2025-01-10T08:00:00Z is before start 2025-01-10T10:00:00Z",
			err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidWindow)
	})

	t.Run("UnknownStateError", func(t *testing.T) {
		err := errs.NewUnknownStateError("SHIPPED")

		assert.Equal(t, `unknown state: "SHIPPED"`, err.Error())
		require.ErrorIs(t, err, errs.ErrUnknownState)
	})

	t.Run("ConcurrencyConflictError", func(t *testing.T) {
		err := errs.NewConcurrencyConflictError("order", "abc", 3)

		assert.Equal(t, "concurrency conflict: order abc was modified concurrently (expected version 3)", err.Error())
		require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	})

	t.Run("ObjectIsReferencedError", func(t *testing.T) {
		err := errs.NewObjectIsReferencedError("workCenter", "wc-1", "orders", 2)

		assert.Equal(t, "object is referenced: workCenter wc-1 is referenced by 2 orders", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectIsReferenced)
	})
}

func TestErrorsCanBeMatchedThroughWrapping(t *testing.T) {
	wrapped := errors.Join(
		errs.NewValueIsRequiredError("start"),
		errs.NewObjectNotFoundError("order", "1"),
	)

	require.ErrorIs(t, wrapped, errs.ErrValueIsRequired)
	require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, "1", notFound.ID)
}
