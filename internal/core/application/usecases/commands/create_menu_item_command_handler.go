package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/services"
)

// CreateMenuItemCommandHandler stores a new menu item. An unknown category
// yields errs.ErrObjectNotFound.
type CreateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

func NewCreateMenuItemCommandHandler(uowFactory CatalogUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (*catalog.MenuItem, error) {
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

	if err := uow.MenuItemRepository().Add(ctx, cmd.MenuItem()); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cmd.MenuItem(), nil
}
