package guard_test

import (
	"errors"
	"testing"

	"shipconfirm/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

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
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

// TestConstructorGuardEmbedded shows the guard embedded in a parameterless command.
func TestConstructorGuardEmbedded(t *testing.T) {
	errRunNotConstructed := errors.New("Run must be created via newRun")

	type run struct {
		guard guard.ConstructorGuard
	}

	newRun := func() run {
		return run{guard: guard.NewConstructorGuard()}
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		require.NoError(t, newRun().guard.Validate(errRunNotConstructed))
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var r run
		require.ErrorIs(t, r.guard.Validate(errRunNotConstructed), errRunNotConstructed)
	})
}
