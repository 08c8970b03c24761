// Package kafka publishes order events to a Kafka topic.
package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/order"
)

// StatusChangedMessage is the wire form of order.StatusChangedEvent. The
// message key is the order id so that events of one order stay in one partition.
type StatusChangedMessage struct {
	EventID    string       `json:"eventId"`
	OrderID    string       `json:"orderId"`
	From       order.Status `json:"from"`
	To         order.Status `json:"to"`
	Version    int64        `json:"version"`
	OccurredAt time.Time    `json:"occurredAt"`
}

func MessageFromEvent(event order.StatusChangedEvent) StatusChangedMessage {
	return StatusChangedMessage{
		EventID:    event.EventID.String(),
		OrderID:    event.OrderID.String(),
		From:       event.From,
		To:         event.To,
		Version:    event.Version,
		OccurredAt: event.OccurredAt,
	}
}

// DecodeStatusChanged parses a payload. Unknown statuses are rejected by
// order.Status.UnmarshalText.
func DecodeStatusChanged(payload []byte) (order.StatusChangedEvent, error) {
	var msg StatusChangedMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return order.StatusChangedEvent{}, fmt.Errorf("decode status changed message: %w", err)
	}

	eventID, err := kernel.NewID(msg.EventID)
	if err != nil {
		return order.StatusChangedEvent{}, err
	}
	orderID, err := kernel.NewID(msg.OrderID)
	if err != nil {
		return order.StatusChangedEvent{}, err
	}

	return order.StatusChangedEvent{
		EventID:    eventID,
		OrderID:    orderID,
		From:       msg.From,
		To:         msg.To,
		Version:    msg.Version,
		OccurredAt: msg.OccurredAt,
	}, nil
}
