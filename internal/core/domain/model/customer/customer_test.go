package customer_test

import (
	"testing"
	"time"

	"storeadmin/internal/core/domain/model/customer"
	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreCustomer(t *testing.T) {
	registered := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("should restore a valid customer", func(t *testing.T) {
		c, err := customer.RestoreCustomer(kernel.MustNewID("CUST-001"), "John Smith", "john.smith@example.com",
			registered, kernel.MustNewMoneyFromFloat(789.95), customer.Active)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "JS", c.Initials())
		assert.Equal(t, "789.95", c.TotalSpending().String())
		assert.True(t, c.Matches("smith@"))
		assert.True(t, c.Matches("JOHN"))
		assert.False(t, c.Matches("emily"))
	})

	t.Run("should reject invalid fields", func(t *testing.T) {
		c, err := customer.RestoreCustomer(kernel.ID{}, " ", "robert.brown", registered, kernel.Money{}, customer.Status("vip"))

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"robert.brown" has no @`)
		assert.Contains(t, err.Error(), `"vip" is not active or banned`)
	})
}

func TestParseStatus(t *testing.T) {
	s, err := customer.ParseStatus("banned")
	require.NoError(t, err)
	assert.Equal(t, customer.Banned, s)

	_, err = customer.ParseStatus("Banned")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
