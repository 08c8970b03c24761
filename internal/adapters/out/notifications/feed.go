// Package notifications keeps the recent notification history in memory and
// writes every notification to the log.
package notifications

import (
	"context"
	"log/slog"
	"sync"

	"storeadmin/internal/core/domain/model/notification"
	"storeadmin/internal/core/ports"
)

const DefaultCapacity = 100

var (
	_ ports.Notifier         = (*Feed)(nil)
	_ ports.NotificationFeed = (*Feed)(nil)
)

// Feed is a fixed size ring of notifications. The oldest entry is dropped
// when the ring is full.
type Feed struct {
	mu     sync.RWMutex
	ring   []notification.Notification
	next   int
	size   int
	logger *slog.Logger
}

func NewFeed(capacity int, logger *slog.Logger) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Feed{
		ring:   make([]notification.Notification, capacity),
		logger: logger.With("component", "NotificationFeed"),
	}
}

func (f *Feed) Notify(ctx context.Context, n notification.Notification) {
	f.mu.Lock()
	f.ring[f.next] = n
	f.next = (f.next + 1) % len(f.ring)
	if f.size < len(f.ring) {
		f.size++
	}
	f.mu.Unlock()

	attrs := []any{"id", n.ID.String(), "title", n.Title, "description", n.Description}
	if n.IsFailure() {
		f.logger.WarnContext(ctx, "notification", append(attrs, "cause", n.Cause)...)
		return
	}
	f.logger.InfoContext(ctx, "notification", attrs...)
}

// Recent returns up to limit notifications, newest first.
func (f *Feed) Recent(limit int) []notification.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if limit <= 0 || limit > f.size {
		limit = f.size
	}

	out := make([]notification.Notification, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (f.next - i + len(f.ring)) % len(f.ring)
		out = append(out, f.ring[idx])
	}
	return out
}
