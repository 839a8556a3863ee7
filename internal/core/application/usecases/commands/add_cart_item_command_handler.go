package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/services"
)

// AddCartItemCommandHandler snapshots the current menu price into a new cart
// line, or merges the quantity into the existing line for the same item.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	policy     services.AccessPolicy
}

func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle returns the stored line. An unknown menu item yields
// errs.ErrObjectNotFound; a merged quantity above cart.MaxQuantity yields
// errs.ErrValueIsOutOfRange and leaves the line unchanged.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (*cart.Line, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Caller(), services.OpAddCartItem); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.MenuItemRepository().Get(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	line, err := cart.NewLine(cmd.Caller().ID, item.ID(), cmd.Quantity(), item.Price())
	if err != nil {
		return nil, err
	}

	stored, err := uow.CartRepository().Add(ctx, line)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
