package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"storeadmin/internal/adapters/out/kafka"
	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/order"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafkaGo.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafkaGo.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func testEvent() order.StatusChangedEvent {
	return order.StatusChangedEvent{
		EventID:    kernel.MustNewID("evt-1"),
		OrderID:    kernel.MustNewID("ORD-2023-002"),
		From:       order.Processing,
		To:         order.Shipped,
		Version:    1,
		OccurredAt: time.Date(2025, time.April, 9, 10, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_PublishStatusChanged(t *testing.T) {
	t.Run("should write one message keyed by order id", func(t *testing.T) {
		writer := &recordingWriter{}
		publisher := kafka.NewPublisher(writer)

		err := publisher.PublishStatusChanged(t.Context(), testEvent())

		require.NoError(t, err)
		require.Len(t, writer.messages, 1)
		assert.Equal(t, "ORD-2023-002", string(writer.messages[0].Key))

		var body map[string]any
		require.NoError(t, json.Unmarshal(writer.messages[0].Value, &body))
		assert.Equal(t, "processing", body["from"])
		assert.Equal(t, "shipped", body["to"])
		assert.EqualValues(t, 1, body["version"])
	})

	t.Run("should return writer error", func(t *testing.T) {
		writer := &recordingWriter{err: errors.New("broker unavailable")}
		publisher := kafka.NewPublisher(writer)

		err := publisher.PublishStatusChanged(t.Context(), testEvent())

		assert.EqualError(t, err, "broker unavailable")
	})

	t.Run("should close writer", func(t *testing.T) {
		writer := &recordingWriter{}
		require.NoError(t, kafka.NewPublisher(writer).Close())
		assert.True(t, writer.closed)
	})
}

func TestDecodeStatusChanged(t *testing.T) {
	t.Run("should decode what the publisher writes", func(t *testing.T) {
		payload, err := json.Marshal(kafka.MessageFromEvent(testEvent()))
		require.NoError(t, err)

		event, err := kafka.DecodeStatusChanged(payload)

		require.NoError(t, err)
		assert.True(t, event.OrderID.IsEqual(kernel.MustNewID("ORD-2023-002")))
		assert.Equal(t, order.Shipped, event.To)
		assert.Equal(t, int64(1), event.Version)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		payload := []byte(`{"eventId":"e","orderId":"o","from":"pending","to":"lost","version":1}`)

		_, err := kafka.DecodeStatusChanged(payload)

		assert.Error(t, err)
	})

	t.Run("should reject missing order id", func(t *testing.T) {
		payload := []byte(`{"eventId":"e","orderId":"","from":"pending","to":"shipped","version":1}`)

		_, err := kafka.DecodeStatusChanged(payload)

		assert.Error(t, err)
	})
}
