package commands

import (
	"context"

	"littlelemon/internal/core/domain/services"
)

// DeleteMenuItemCommandHandler removes a menu item together with the cart
// lines holding it. Items referenced by placed orders cannot be deleted
// (errs.ErrConflict).
type DeleteMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	cache      MenuItemCache
	policy     services.AccessPolicy
}

// NewDeleteMenuItemCommandHandler accepts a nil cache when caching is disabled.
func NewDeleteMenuItemCommandHandler(uowFactory CatalogUoWFactory, cache MenuItemCache) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		policy:     services.NewAccessPolicy(),
	}
}

func (h DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Caller(), services.OpManageCatalog); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MenuItemRepository().Delete(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if h.cache != nil {
		h.cache.Invalidate(ctx, cmd.MenuItemID())
	}
	return nil
}
