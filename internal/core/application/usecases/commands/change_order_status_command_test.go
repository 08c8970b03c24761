package commands_test

import (
	"testing"

	"storeadmin/internal/core/application/usecases/commands"
	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	t.Run("should accept every valid status", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			cmd, err := commands.NewChangeOrderStatusCommand(kernel.MustNewID("ORD-2023-001"), s)

			require.NoError(t, err)
			require.NoError(t, cmd.Validate())
			assert.Equal(t, s, cmd.Status())
			assert.Equal(t, "ORD-2023-001", cmd.OrderID().String())
		}
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderStatusCommand(kernel.MustNewID("ORD-2023-001"), order.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
	})

	t.Run("should reject a missing order id", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.ID{}, order.Shipped)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ID must be created")
	})
}
