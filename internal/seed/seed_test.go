package seed_test

import (
	"testing"

	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	t.Run("should build consistent orders", func(t *testing.T) {
		orders := seed.Orders()

		require.Len(t, orders, 4)
		statuses := make([]order.Status, 0, len(orders))
		for _, o := range orders {
			require.NoError(t, o.Validate())
			statuses = append(statuses, o.Status())
		}
		assert.Equal(t, []order.Status{order.Delivered, order.Processing, order.Shipped, order.Pending}, statuses)
		assert.Equal(t, "329.98", orders[2].Total().String())
	})

	t.Run("should build products and customers", func(t *testing.T) {
		assert.Len(t, seed.Products(), 6)
		assert.Len(t, seed.Customers(), 5)
	})
}
