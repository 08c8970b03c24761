package order

import (
	"time"

	"storeadmin/internal/core/domain/model/kernel"
)

// StatusChangedEvent is raised after a status change has been committed to the store.
type StatusChangedEvent struct {
	EventID    kernel.ID
	OrderID    kernel.ID
	From       Status
	To         Status
	Version    int64
	OccurredAt time.Time
}

// NewStatusChangedEvent builds the event for the transition from -> current state of o.
func NewStatusChangedEvent(o *Order, from Status, occurredAt time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		EventID:    kernel.NewRandomID("evt"),
		OrderID:    o.ID(),
		From:       from,
		To:         o.Status(),
		Version:    o.Version(),
		OccurredAt: occurredAt.UTC(),
	}
}
