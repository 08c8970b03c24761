package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/core/ports"

	kafkaGo "github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkaGo.Message) error
	Close() error
}

var _ ports.EventPublisher = (*Publisher)(nil)

type Publisher struct {
	writer MessageWriter
}

// NewWriter builds a writer for topic on brokers.
func NewWriter(brokers []string, topic string) *kafkaGo.Writer {
	return &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkaGo.Hash{},
		AllowAutoTopicCreation: true,
	}
}

func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) PublishStatusChanged(ctx context.Context, event order.StatusChangedEvent) error {
	payload, err := json.Marshal(MessageFromEvent(event))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(event.OrderID.String()),
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
