package order_test

import (
	"testing"
	"time"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)

func newItem(t *testing.T, productID, name string, quantity int, price float64) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.MustNewID(productID), name, quantity, kernel.MustNewMoneyFromFloat(price))
	require.NoError(t, err)
	return item
}

func smithItems(t *testing.T) []order.Item {
	t.Helper()
	return []order.Item{
		newItem(t, "1", "Premium Bluetooth Headphones", 1, 199.99),
		newItem(t, "2", "Organic Cotton T-Shirt", 2, 29.99),
	}
}

func TestNewItem(t *testing.T) {
	t.Run("should create a valid item", func(t *testing.T) {
		item := newItem(t, "3", "Smart Watch Pro", 2, 149.99)

		require.NoError(t, item.Validate())
		assert.Equal(t, "3", item.ProductID().String())
		assert.Equal(t, "Smart Watch Pro", item.ProductName())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "299.98", item.LineTotal().String())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.MustNewID("3"), "Smart Watch Pro", 0, kernel.MustNewMoneyFromFloat(1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should collect every invalid field", func(t *testing.T) {
		_, err := order.NewItem(kernel.ID{}, " ", -1, kernel.Money{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ID must be created")
		assert.Contains(t, err.Error(), "product name")
		assert.Contains(t, err.Error(), "-1 is not greater than 0")
		assert.Contains(t, err.Error(), "Money must be created")
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var item order.Item

		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.MustNewID("ORD-2023-001")

	t.Run("should restore a consistent order", func(t *testing.T) {
		o, err := order.RestoreOrder(id, "John Smith", placedAt, kernel.MustNewMoneyFromFloat(259.97), order.Delivered, smithItems(t), 3)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "John Smith", o.Customer())
		assert.Equal(t, placedAt, o.PlacedAt())
		assert.Equal(t, "259.97", o.Total().String())
		assert.Equal(t, order.Delivered, o.Status())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, int64(3), o.Version())
	})

	t.Run("should reject a total that does not match the items", func(t *testing.T) {
		o, err := order.RestoreOrder(id, "John Smith", placedAt, kernel.MustNewMoneyFromFloat(259.98), order.Delivered, smithItems(t), 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "total 259.98 does not match items sum 259.97")
	})

	t.Run("should reject an order without items", func(t *testing.T) {
		o, err := order.RestoreOrder(id, "John Smith", placedAt, kernel.ZeroMoney(), order.Pending, nil, 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(id, "John Smith", placedAt, kernel.MustNewMoneyFromFloat(259.97), order.Unknown, smithItems(t), 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
	})

	t.Run("should collect every invalid field", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.ID{}, "  ", time.Time{}, kernel.ZeroMoney(), order.Status(9), smithItems(t), -1)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "ID must be created")
		assert.Contains(t, err.Error(), "customer")
		assert.Contains(t, err.Error(), "order date")
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "-1 is negative")
	})

	t.Run("should not share the items slice with the caller", func(t *testing.T) {
		items := smithItems(t)
		o, err := order.RestoreOrder(id, "John Smith", placedAt, kernel.MustNewMoneyFromFloat(259.97), order.Pending, items, 0)
		require.NoError(t, err)

		items[0] = newItem(t, "9", "Replaced", 1, 1)
		got := o.Items()
		got[1] = newItem(t, "9", "Replaced", 1, 1)

		assert.Equal(t, "Premium Bluetooth Headphones", o.Items()[0].ProductName())
		assert.Equal(t, "Organic Cotton T-Shirt", o.Items()[1].ProductName())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T, status order.Status) *order.Order {
		t.Helper()
		o, err := order.RestoreOrder(kernel.MustNewID("ORD-2023-002"), "Jane Doe", placedAt,
			kernel.MustNewMoneyFromFloat(259.97), status, smithItems(t), 0)
		require.NoError(t, err)
		return o
	}

	t.Run("should allow any status from any other", func(t *testing.T) {
		for _, from := range order.AllStatuses() {
			for _, to := range order.AllStatuses() {
				o := newOrder(t, from)

				require.NoError(t, o.ChangeStatus(to))
				assert.Equal(t, to, o.Status())
				assert.Equal(t, int64(1), o.Version())
			}
		}
	})

	t.Run("should reject invalid status and keep state", func(t *testing.T) {
		o := newOrder(t, order.Shipped)

		err := o.ChangeStatus(order.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, int64(0), o.Version())
	})

	t.Run("should leave the original untouched when changing a clone", func(t *testing.T) {
		o := newOrder(t, order.Pending)
		c := o.Clone()

		require.NoError(t, c.ChangeStatus(order.Cancelled))

		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.Cancelled, c.Status())
		assert.True(t, o.IsEqual(c))
		assert.Equal(t, o.Total(), c.Total())
		assert.Equal(t, o.Customer(), c.Customer())
	})
}

func TestOrder_Matches(t *testing.T) {
	o, err := order.RestoreOrder(kernel.MustNewID("ORD-2023-001"), "John Smith", placedAt,
		kernel.MustNewMoneyFromFloat(259.97), order.Delivered, smithItems(t), 0)
	require.NoError(t, err)

	for _, term := range []string{"", "smith", "SMITH", "ord-2023", "001", "  john "} {
		assert.True(t, o.Matches(term), term)
	}
	for _, term := range []string{"doe", "ORD-2024", "headphones"} {
		assert.False(t, o.Matches(term), term)
	}
}
