package commands_test

import (
	"errors"
	"testing"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddCartItemCommandHandler_Handle_SnapshotsPrice(t *testing.T) {
	ctx := t.Context()
	item := mustMenuItem("6.50")
	cmd, err := commands.NewAddCartItemCommand(customer, item.ID(), 2)
	require.NoError(t, err)

	items := new(MockMenuItemRepository)
	lines := new(MockCartRepository)
	uow := new(MockUoW)
	var added *cart.Line
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(items).Once(),
		items.On("Get", ctx, item.ID()).Return(item, nil).Once(),
		uow.On("CartRepository").Return(lines).Once(),
		lines.On("Add", ctx, mock.AnythingOfType("*cart.Line")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*cart.Line) }).
			Return(mustLine(customer.ID, 5, "6.50"), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	stored, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Quantity())

	require.NotNil(t, added)
	assert.True(t, added.UserID().IsEqual(customer.ID))
	assert.Equal(t, 2, added.Quantity())
	assert.Equal(t, "6.50", added.UnitPrice().String())
	assert.Equal(t, "13.00", added.LineTotal().String())

	items.AssertExpectations(t)
	lines.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_NonCustomerDenied(t *testing.T) {
	ctx := t.Context()
	factory := new(MockCartUoWFactory)
	h := commands.NewAddCartItemCommandHandler(factory)

	for _, caller := range []user.Caller{manager, crew, user.NewCaller(kernel.NewUUID())} {
		cmd, err := commands.NewAddCartItemCommand(caller, mustMenuItem("1.00").ID(), 1)
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrAccessDenied)
	}
	factory.AssertNotCalled(t, "Create")
}

func TestAddCartItemCommandHandler_Handle_UnknownMenuItem(t *testing.T) {
	ctx := t.Context()
	item := mustMenuItem("1.00")
	cmd, _ := commands.NewAddCartItemCommand(customer, item.ID(), 1)

	items := new(MockMenuItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(items).Once(),
		items.On("Get", ctx, item.ID()).Return(nil, errs.NewObjectNotFoundError("menu item", item.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewAddCartItemCommandHandler(factory).Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_MergeOverflow(t *testing.T) {
	ctx := t.Context()
	item := mustMenuItem("1.00")
	cmd, _ := commands.NewAddCartItemCommand(customer, item.ID(), 10)

	items := new(MockMenuItemRepository)
	lines := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(items).Once(),
		items.On("Get", ctx, item.ID()).Return(item, nil).Once(),
		uow.On("CartRepository").Return(lines).Once(),
		lines.On("Add", ctx, mock.Anything).
			Return(nil, errs.NewValueIsOutOfRangeError("quantity", 32770, 1, cart.MaxQuantity)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewAddCartItemCommandHandler(factory).Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	uow.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddCartItemCommand(customer, mustMenuItem("1.00").ID(), 1)

	uow := new(MockUoW)
	factory := new(MockCartUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	_, err := commands.NewAddCartItemCommandHandler(factory).Handle(ctx, cmd)
	require.EqualError(t, err, "begin error")
}

func TestAddCartItemCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewAddCartItemCommandHandler(new(MockCartUoWFactory))
	_, err := h.Handle(t.Context(), commands.AddCartItemCommand{})
	require.ErrorIs(t, err, commands.ErrAddCartItemCommandIsNotConstructed)
}
