package guard_test

import (
	"errors"
	"testing"

	"production/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("work center not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuard_EmbeddedInValueObject shows the intended usage: the owner
// exposes Validate and forwards its own sentinel.
func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type shift struct {
		name  string
		hours int
		guard guard.ConstructorGuard
	}

	errShiftNotConstructed := errors.New("shift must be created via newShift")

	newShift := func(name string, hours int) (shift, error) {
		if name == "" {
			return shift{}, errors.New("name is required")
		}
		if hours <= 0 {
			return shift{}, errors.New("hours must be positive")
		}
		return shift{name: name, hours: hours, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_validates", func(t *testing.T) {
		s, err := newShift("morning", 8)

		require.NoError(t, err)
		require.NoError(t, s.guard.Validate(errShiftNotConstructed))
	})

	t.Run("zero_value_fails_with_owner_error", func(t *testing.T) {
		var s shift

		assert.Equal(t, errShiftNotConstructed, s.guard.Validate(errShiftNotConstructed))
	})

	t.Run("copies_keep_their_state", func(t *testing.T) {
		s, err := newShift("night", 8)
		require.NoError(t, err)

		copied := s

		require.NoError(t, copied.guard.Validate(errShiftNotConstructed))
	})
}

func TestConstructorGuard_Concurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 500 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
