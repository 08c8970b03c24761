package ports

import (
	"context"

	"storeadmin/internal/core/domain/model/order"
)

// EventPublisher announces committed order changes to other instances and
// downstream consumers.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event order.StatusChangedEvent) error
}
