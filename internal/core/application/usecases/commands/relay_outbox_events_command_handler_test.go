package commands_test

import (
	"errors"
	"testing"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/ports"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func outboxMessages(n int) []ports.OutboxMessage {
	msgs := make([]ports.OutboxMessage, n)
	for i := range msgs {
		msgs[i] = ports.OutboxMessage{
			ID:          kernel.NewUUID(),
			AggregateID: kernel.NewUUID(),
			EventType:   "order.placed",
			Payload:     []byte(`{}`),
		}
	}
	return msgs
}

func TestNewRelayOutboxEventsCommand(t *testing.T) {
	cmd, err := commands.NewRelayOutboxEventsCommand(50)
	require.NoError(t, err)
	assert.Equal(t, 50, cmd.BatchSize())

	_, err = commands.NewRelayOutboxEventsCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestRelayOutboxEventsCommandHandler_Handle_PublishesBatch(t *testing.T) {
	ctx := t.Context()
	msgs := outboxMessages(2)
	cmd, _ := commands.NewRelayOutboxEventsCommand(10)

	outbox := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("ListUnpublished", ctx, 10).Return(msgs, nil).Once(),
		publisher.On("Publish", ctx, msgs[0]).Return(nil).Once(),
		publisher.On("Publish", ctx, msgs[1]).Return(nil).Once(),
		outbox.On("MarkPublished", ctx, []kernel.UUID{msgs[0].ID, msgs[1].ID}, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	n, err := commands.NewRelayOutboxEventsCommandHandler(factory, publisher).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	outbox.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRelayOutboxEventsCommandHandler_Handle_StopsAtFirstFailure(t *testing.T) {
	ctx := t.Context()
	msgs := outboxMessages(3)
	cmd, _ := commands.NewRelayOutboxEventsCommand(10)
	brokerDown := errors.New("broker unavailable")

	outbox := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("ListUnpublished", ctx, 10).Return(msgs, nil).Once(),
		publisher.On("Publish", ctx, msgs[0]).Return(nil).Once(),
		publisher.On("Publish", ctx, msgs[1]).Return(brokerDown).Once(),
		outbox.On("MarkPublished", ctx, []kernel.UUID{msgs[0].ID}, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	n, err := commands.NewRelayOutboxEventsCommandHandler(factory, publisher).Handle(ctx, cmd)
	require.ErrorIs(t, err, brokerDown)
	assert.Equal(t, 1, n)
	publisher.AssertNotCalled(t, "Publish", ctx, msgs[2])
}

func TestRelayOutboxEventsCommandHandler_Handle_NothingToRelay(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRelayOutboxEventsCommand(10)

	outbox := new(MockOutboxRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(outbox).Once()
	outbox.On("ListUnpublished", ctx, 10).Return([]ports.OutboxMessage{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	n, err := commands.NewRelayOutboxEventsCommandHandler(factory, new(MockEventPublisher)).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, n)
	uow.AssertNotCalled(t, "Commit", ctx)
}
