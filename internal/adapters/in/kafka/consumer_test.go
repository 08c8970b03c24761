package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"storeadmin/internal/adapters/in/kafka"
	eventcodec "storeadmin/internal/adapters/out/kafka"
	"storeadmin/internal/core/application/workingset"
	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/seed"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedReader hands out queued payloads, then signals drained and blocks
// until ctx is done.
type scriptedReader struct {
	payloads [][]byte
	failures int
	drained  chan struct{}
	closed   bool
}

func (r *scriptedReader) ReadMessage(ctx context.Context) (kafkaGo.Message, error) {
	if r.failures > 0 {
		r.failures--
		return kafkaGo.Message{}, errors.New("broker unavailable")
	}
	if len(r.payloads) > 0 {
		p := r.payloads[0]
		r.payloads = r.payloads[1:]
		return kafkaGo.Message{Value: p}, nil
	}
	close(r.drained)
	<-ctx.Done()
	return kafkaGo.Message{}, ctx.Err()
}

func (r *scriptedReader) Close() error {
	r.closed = true
	return nil
}

func payload(t *testing.T, orderID string, to order.Status, version int64) []byte {
	t.Helper()
	b, err := json.Marshal(eventcodec.StatusChangedMessage{
		EventID:    "evt-" + orderID,
		OrderID:    orderID,
		From:       order.Pending,
		To:         to,
		Version:    version,
		OccurredAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return b
}

func runUntilDrained(t *testing.T, reader *scriptedReader, set *workingset.OrderSet) {
	t.Helper()
	ctx, cancel := context.WithCancel(t.Context())
	consumer := kafka.NewStatusChangedConsumer(reader, set, slog.New(slog.DiscardHandler))

	done := make(chan error, 1)
	go func() { done <- consumer.Run(ctx) }()

	select {
	case <-reader.drained:
	case <-time.After(time.Second):
		t.Fatal("consumer did not drain the reader")
	}
	cancel()
	require.NoError(t, <-done)
	assert.True(t, reader.closed)
}

func TestStatusChangedConsumer_Run(t *testing.T) {
	t.Run("should apply next version and skip stale or garbage messages", func(t *testing.T) {
		set := workingset.New()
		set.Load(seed.Orders())

		reader := &scriptedReader{
			failures: 1,
			drained:  make(chan struct{}),
			payloads: [][]byte{
				[]byte("not json"),
				payload(t, "ORD-2023-004", order.Processing, 1),
				payload(t, "ORD-2023-004", order.Shipped, 1),
				payload(t, "ORD-2023-001", order.Cancelled, 5),
				payload(t, "ORD-UNKNOWN", order.Shipped, 1),
			},
		}

		runUntilDrained(t, reader, set)

		pending, ok := set.Get(kernel.MustNewID("ORD-2023-004"))
		require.True(t, ok)
		assert.Equal(t, order.Processing, pending.Status())
		assert.Equal(t, int64(1), pending.Version())

		delivered, ok := set.Get(kernel.MustNewID("ORD-2023-001"))
		require.True(t, ok)
		assert.Equal(t, order.Delivered, delivered.Status())
	})
}

// brokenReader fails every read until ctx is done.
type brokenReader struct {
	reads atomic.Int32
}

func (r *brokenReader) ReadMessage(ctx context.Context) (kafkaGo.Message, error) {
	r.reads.Add(1)
	if ctx.Err() != nil {
		return kafkaGo.Message{}, ctx.Err()
	}
	return kafkaGo.Message{}, errors.New("broker unavailable")
}

func (r *brokenReader) Close() error { return nil }

func TestStatusChangedConsumer_ReadErrors(t *testing.T) {
	t.Run("should back off between failed reads and stop on cancel", func(t *testing.T) {
		reader := &brokenReader{}
		consumer := kafka.NewStatusChangedConsumer(reader, workingset.New(), slog.New(slog.DiscardHandler))
		ctx, cancel := context.WithCancel(t.Context())

		done := make(chan error, 1)
		go func() { done <- consumer.Run(ctx) }()

		time.Sleep(500 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("consumer did not stop while waiting to retry")
		}
		assert.Less(t, reader.reads.Load(), int32(10))
		assert.GreaterOrEqual(t, reader.reads.Load(), int32(1))
	})
}
