// Package kafka publishes outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"littlelemon/internal/core/ports"
	"littlelemon/internal/pkg/errs"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

const EventTypeHeader = "event_type"

var _ ports.EventPublisher = &OrderEventPublisher{}

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type BreakerSettings struct {
	// ConsecutiveFailures trips the breaker.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{ConsecutiveFailures: 5, OpenTimeout: 30 * time.Second}
}

// OrderEventPublisher writes each message keyed by its aggregate id so all
// events of one order land on the same partition in order.
type OrderEventPublisher struct {
	writer  messageWriter
	breaker *gobreaker.CircuitBreaker[struct{}]
	logger  *slog.Logger
}

// NewOrderEventPublisher creates a writer for topic on brokers.
func NewOrderEventPublisher(brokers []string, topic string, settings BreakerSettings, logger *slog.Logger) (*OrderEventPublisher, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		WriteTimeout:           10 * time.Second,
		AllowAutoTopicCreation: true,
	}
	return newOrderEventPublisher(w, settings, logger), nil
}

func newOrderEventPublisher(w messageWriter, settings BreakerSettings, logger *slog.Logger) *OrderEventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "order_event_publisher")
	if settings.ConsecutiveFailures == 0 {
		settings.ConsecutiveFailures = DefaultBreakerSettings().ConsecutiveFailures
	}

	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "kafka-order-events",
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &OrderEventPublisher{writer: w, breaker: breaker, logger: logger}
}

// Publish returns gobreaker.ErrOpenState without contacting Kafka while the
// breaker is open.
func (p *OrderEventPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	_, err := p.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, p.writer.WriteMessages(ctx, kafkago.Message{
			Key:   []byte(msg.AggregateID.String()),
			Value: msg.Payload,
			Time:  msg.OccurredAt,
			Headers: []kafkago.Header{
				{Key: EventTypeHeader, Value: []byte(msg.EventType)},
				{Key: "event_id", Value: []byte(msg.ID.String())},
			},
		})
	})
	return err
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
