package guard_test

import (
	"errors"
	"testing"

	"storeadmin/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("ListOrdersQuery must be created via NewListOrdersQuery")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type deleteProduct struct {
		productID string
		guard     guard.ConstructorGuard
	}
	errNotConstructed := errors.New("deleteProduct must be created via newDeleteProduct")

	newDeleteProduct := func(id string) (deleteProduct, error) {
		if id == "" {
			return deleteProduct{}, errors.New("product id is required")
		}
		return deleteProduct{productID: id, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_produces_valid_value", func(t *testing.T) {
		cmd, err := newDeleteProduct("6")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errNotConstructed))
		assert.Equal(t, "6", cmd.productID)
	})

	t.Run("struct_literal_is_rejected", func(t *testing.T) {
		cmd := deleteProduct{productID: "6"}

		assert.Equal(t, errNotConstructed, cmd.guard.Validate(errNotConstructed))
	})

	t.Run("constructor_rejects_empty_id", func(t *testing.T) {
		_, err := newDeleteProduct("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "product id is required")
	})
}
