package notification_test

import (
	"errors"
	"testing"
	"time"

	"storeadmin/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
)

func TestNotification(t *testing.T) {
	now := time.Date(2025, 4, 5, 10, 0, 0, 0, time.FixedZone("CET", 3600))

	t.Run("should build a success notification without cause", func(t *testing.T) {
		n := notification.NewSuccess("Order status updated", "Order ORD-2023-001 is now shipped", now)

		assert.Equal(t, notification.Success, n.Kind)
		assert.False(t, n.IsFailure())
		assert.Empty(t, n.Cause)
		assert.Equal(t, time.UTC, n.CreatedAt.Location())
		assert.Contains(t, n.ID.String(), "ntf-")
	})

	t.Run("should carry the failure cause", func(t *testing.T) {
		n := notification.NewFailure("Failed to update order status", "Order ORD-2023-001", errors.New("connection refused"), now)

		assert.True(t, n.IsFailure())
		assert.Equal(t, "connection refused", n.Cause)
	})

	t.Run("should give every notification its own id", func(t *testing.T) {
		a := notification.NewSuccess("a", "", now)
		b := notification.NewSuccess("a", "", now)

		assert.False(t, a.ID.IsEqual(b.ID))
	})
}
