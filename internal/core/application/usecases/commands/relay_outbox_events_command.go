package commands

import (
	"errors"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrRelayOutboxEventsCommandIsNotConstructed = errors.New(
	"RelayOutboxEventsCommand must be created via NewRelayOutboxEventsCommand constructor",
)

// RelayOutboxEventsCommand publishes up to batchSize stored events.
// It is issued by the outbox relay job, not by users.
type RelayOutboxEventsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayOutboxEventsCommand(batchSize int) (RelayOutboxEventsCommand, error) {
	if batchSize < 1 {
		return RelayOutboxEventsCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, "∞")
	}
	return RelayOutboxEventsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RelayOutboxEventsCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxEventsCommandIsNotConstructed)
}

func (c RelayOutboxEventsCommand) BatchSize() int {
	return c.batchSize
}
