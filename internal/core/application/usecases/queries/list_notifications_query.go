package queries

import (
	"context"
	"errors"

	"storeadmin/internal/core/domain/model/notification"
	"storeadmin/internal/core/ports"
	"storeadmin/internal/pkg/errs"
	"storeadmin/internal/pkg/guard"
)

// MaxNotifications caps a single notifications read.
const MaxNotifications = 100

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

type ListNotificationsQuery struct {
	limit int
	guard guard.ConstructorGuard
}

// NewListNotificationsQuery accepts 1..MaxNotifications. Zero means the maximum.
func NewListNotificationsQuery(limit int) (ListNotificationsQuery, error) {
	if limit == 0 {
		limit = MaxNotifications
	}
	if limit < 1 || limit > MaxNotifications {
		return ListNotificationsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxNotifications)
	}
	return ListNotificationsQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

// ListNotificationsQueryHandler reads the most recent notifications, newest first.
type ListNotificationsQueryHandler struct {
	feed ports.NotificationFeed
}

func NewListNotificationsQueryHandler(feed ports.NotificationFeed) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{feed: feed}
}

func (h ListNotificationsQueryHandler) Handle(_ context.Context, query ListNotificationsQuery) ([]notification.Notification, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.feed.Recent(query.limit), nil
}
