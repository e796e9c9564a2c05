package guard_test

import (
	"errors"
	"testing"

	"valueguard/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardSetOnlyAfterChecks shows the intended usage: the guard is
// set on the success path, so a failed constructor hands back an unset guard.
func TestConstructorGuardSetOnlyAfterChecks(t *testing.T) {
	type count struct {
		n     int
		guard guard.ConstructorGuard
	}

	errCountNotConstructed := errors.New("count must be created via newCount")

	newCount := func(n int) (count, error) {
		if n <= 0 {
			return count{}, errors.New("n must be positive")
		}
		return count{n: n, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction", func(t *testing.T) {
		// When
		c, err := newCount(3)

		// Then
		require.NoError(t, err)
		require.NoError(t, c.guard.Validate(errCountNotConstructed))
		assert.Equal(t, 3, c.n)
	})

	t.Run("failed_construction_returns_unset_guard", func(t *testing.T) {
		// When
		c, err := newCount(0)

		// Then
		require.Error(t, err)
		assert.Zero(t, c)
		assert.Equal(t, errCountNotConstructed, c.guard.Validate(errCountNotConstructed))
	})
}
