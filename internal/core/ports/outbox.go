package ports

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
)

// OutboxMessage is a stored domain event awaiting delivery.
type OutboxMessage struct {
	ID          kernel.UUID
	AggregateID kernel.UUID
	EventType   string
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository stores domain events next to the state change that
// produced them and hands them to the relay.
type OutboxRepository interface {
	// Add serializes and stores events.
	Add(ctx context.Context, events ...kernel.DomainEvent) error

	// ListUnpublished locks up to limit unpublished messages, oldest first.
	// Rows locked by a concurrent relay are skipped.
	ListUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers an outbox message to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
