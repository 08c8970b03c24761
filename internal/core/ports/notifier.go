package ports

import (
	"context"

	"storeadmin/internal/core/domain/model/notification"
)

// Notifier delivers user-facing outcome messages. Delivery is best effort and
// never fails the operation that produced the notification.
type Notifier interface {
	Notify(ctx context.Context, n notification.Notification)
}

// NotificationFeed exposes the most recent notifications, newest first.
type NotificationFeed interface {
	Recent(limit int) []notification.Notification
}
