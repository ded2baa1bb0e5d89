package guard_test

import (
	"errors"
	"testing"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"

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
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain value object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Quantity struct {
		value float64
		guard guard.ConstructorGuard
	}

	var errQuantityNotConstructed = errors.New("Quantity must be created via NewQuantity")

	newQuantity := func(v float64) (Quantity, error) {
		if v < 0 {
			return Quantity{}, errors.New("quantity cannot be negative")
		}
		return Quantity{value: v, guard: guard.NewConstructorGuard()}, nil
	}

	validateQuantity := func(q Quantity) error {
		return q.guard.Validate(errQuantityNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		q, err := newQuantity(350)
		require.NoError(t, err)
		require.NoError(t, validateQuantity(q))
		assert.InDelta(t, 350.0, q.value, 1e-9)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var q Quantity // zero value
		err := validateQuantity(q)
		require.Error(t, err)
		assert.Equal(t, errQuantityNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newQuantity(-1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})
}
