// Package kafka keeps the local order working set in step with status changes
// committed by other instances.
package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	eventcodec "storeadmin/internal/adapters/out/kafka"
	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/order"

	"github.com/cenkalti/backoff/v4"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	retryInitialInterval = 200 * time.Millisecond
	retryMaxInterval     = 10 * time.Second
)

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafkaGo.Message, error)
	Close() error
}

// StatusApplier applies a remote status change when it is the next version of
// the local copy.
type StatusApplier interface {
	ApplyStatus(id kernel.ID, status order.Status, version int64) (bool, error)
}

type StatusChangedConsumer struct {
	reader  MessageReader
	orders  StatusApplier
	backoff backoff.BackOff
	logger  *slog.Logger
}

// NewReader builds a consumer group reader for topic.
func NewReader(brokers []string, topic, groupID string) *kafkaGo.Reader {
	return kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewStatusChangedConsumer(reader MessageReader, orders StatusApplier, logger *slog.Logger) *StatusChangedConsumer {
	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = retryInitialInterval
	retry.MaxInterval = retryMaxInterval
	retry.MaxElapsedTime = 0
	retry.Reset()

	return &StatusChangedConsumer{
		reader:  reader,
		orders:  orders,
		backoff: retry,
		logger:  logger.With("component", "StatusChangedConsumer"),
	}
}

// Run reads until ctx is cancelled. Bad messages are logged and skipped.
// Read errors are retried with exponential backoff, reset by the next
// successful read.
func (c *StatusChangedConsumer) Run(ctx context.Context) error {
	defer c.reader.Close()

	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.logger.Info("consumer shutting down")
				return nil
			}
			wait := c.backoff.NextBackOff()
			c.logger.ErrorContext(ctx, "error reading message", "error", err, "retryIn", wait)

			select {
			case <-ctx.Done():
				c.logger.Info("consumer shutting down")
				return nil
			case <-time.After(wait):
			}
			continue
		}

		c.backoff.Reset()
		c.handle(ctx, msg.Value)
	}
}

func (c *StatusChangedConsumer) handle(ctx context.Context, payload []byte) {
	event, err := eventcodec.DecodeStatusChanged(payload)
	if err != nil {
		c.logger.ErrorContext(ctx, "error decoding message", "error", err)
		return
	}

	applied, err := c.orders.ApplyStatus(event.OrderID, event.To, event.Version)
	if err != nil {
		c.logger.ErrorContext(ctx, "error applying status change",
			"orderId", event.OrderID.String(), "error", err)
		return
	}
	if applied {
		c.logger.InfoContext(ctx, "applied remote status change",
			"orderId", event.OrderID.String(), "status", event.To.String(), "version", event.Version)
	}
}
