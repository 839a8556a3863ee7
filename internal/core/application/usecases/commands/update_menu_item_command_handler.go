package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/services"
)

// UpdateMenuItemCommandHandler applies changes to a menu item and drops its
// cached copy once the change is committed. Cart lines and order items keep
// the price they were created with.
type UpdateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	cache      MenuItemCache
	policy     services.AccessPolicy
}

// NewUpdateMenuItemCommandHandler accepts a nil cache when caching is disabled.
func NewUpdateMenuItemCommandHandler(uowFactory CatalogUoWFactory, cache MenuItemCache) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		policy:     services.NewAccessPolicy(),
	}
}

func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) (*catalog.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Caller(), services.OpManageCatalog); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.MenuItemRepository()
	item, err := itemRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	if err = applyMenuItemChanges(item, cmd.Changes()); err != nil {
		return nil, err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if h.cache != nil {
		h.cache.Invalidate(ctx, item.ID())
	}
	return item, nil
}

func applyMenuItemChanges(item *catalog.MenuItem, ch MenuItemChanges) error {
	if ch.Title != nil {
		if err := item.Rename(*ch.Title); err != nil {
			return err
		}
	}
	if ch.Price != nil {
		if err := item.Reprice(*ch.Price); err != nil {
			return err
		}
	}
	if ch.Featured != nil {
		item.SetFeatured(*ch.Featured)
	}
	if ch.CategoryID != nil {
		if err := item.MoveTo(*ch.CategoryID); err != nil {
			return err
		}
	}
	return nil
}
