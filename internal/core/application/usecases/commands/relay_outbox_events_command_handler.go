package commands

import (
	"context"
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/ports"
)

// RelayOutboxEventsCommandHandler moves stored order events to the broker.
//
// The batch is locked for the duration of the relay so concurrent relays
// never publish the same row. Messages are published in storage order; the
// first failure stops the batch, the messages published before it are marked
// and the rest are retried on the next run. Delivery is at least once.
type RelayOutboxEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	now        func() time.Time
}

func NewRelayOutboxEventsCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
) RelayOutboxEventsCommandHandler {
	return RelayOutboxEventsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle returns the number of messages published in this run.
func (h RelayOutboxEventsCommandHandler) Handle(ctx context.Context, cmd RelayOutboxEventsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	messages, err := outbox.ListUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	published := make([]kernel.UUID, 0, len(messages))
	var publishErr error
	for _, msg := range messages {
		if publishErr = h.publisher.Publish(ctx, msg); publishErr != nil {
			break
		}
		published = append(published, msg.ID)
	}

	if len(published) > 0 {
		if err = outbox.MarkPublished(ctx, published, h.now().UTC()); err != nil {
			return 0, errors.Join(publishErr, err)
		}
		if err = uow.Commit(ctx); err != nil {
			return 0, errors.Join(publishErr, err)
		}
	}

	return len(published), publishErr
}
