package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/ports"
	"littlelemon/internal/pkg/errs"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafkago.Message
	err      error
	calls    int
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func outboxMessage() ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:          kernel.NewUUID(),
		AggregateID: kernel.NewUUID(),
		EventType:   "order.placed",
		Payload:     []byte(`{"kind":"placed"}`),
		OccurredAt:  time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func headerValue(m kafkago.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestPublish_WritesKeyedMessage(t *testing.T) {
	w := &fakeWriter{}
	p := newOrderEventPublisher(w, DefaultBreakerSettings(), nil)
	msg := outboxMessage()

	require.NoError(t, p.Publish(t.Context(), msg))

	require.Len(t, w.messages, 1)
	got := w.messages[0]
	assert.Equal(t, msg.AggregateID.String(), string(got.Key))
	assert.JSONEq(t, `{"kind":"placed"}`, string(got.Value))
	assert.Equal(t, "order.placed", headerValue(got, EventTypeHeader))
	assert.Equal(t, msg.ID.String(), headerValue(got, "event_id"))
	assert.Equal(t, msg.OccurredAt, got.Time)
}

func TestPublish_ReturnsWriterError(t *testing.T) {
	boom := errors.New("broker unavailable")
	w := &fakeWriter{err: boom}
	p := newOrderEventPublisher(w, DefaultBreakerSettings(), nil)

	err := p.Publish(t.Context(), outboxMessage())

	require.ErrorIs(t, err, boom)
}

func TestPublish_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker unavailable")}
	p := newOrderEventPublisher(w, BreakerSettings{ConsecutiveFailures: 2, OpenTimeout: time.Hour}, nil)

	for range 2 {
		require.Error(t, p.Publish(t.Context(), outboxMessage()))
	}
	err := p.Publish(t.Context(), outboxMessage())

	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, w.calls, "open breaker does not reach the writer")
}

func TestPublish_CanceledContextDoesNotTripBreaker(t *testing.T) {
	w := &fakeWriter{err: context.Canceled}
	p := newOrderEventPublisher(w, BreakerSettings{ConsecutiveFailures: 1, OpenTimeout: time.Hour}, nil)

	for range 3 {
		require.ErrorIs(t, p.Publish(t.Context(), outboxMessage()), context.Canceled)
	}
	assert.Equal(t, 3, w.calls)
}

func TestNewOrderEventPublisher_RequiresBrokersAndTopic(t *testing.T) {
	_, err := NewOrderEventPublisher(nil, "orders", DefaultBreakerSettings(), nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = NewOrderEventPublisher([]string{"localhost:9092"}, "", DefaultBreakerSettings(), nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestClose(t *testing.T) {
	w := &fakeWriter{}
	p := newOrderEventPublisher(w, DefaultBreakerSettings(), nil)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}
