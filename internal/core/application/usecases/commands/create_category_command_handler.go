package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/services"
)

// CreateCategoryCommandHandler stores a new category. A taken slug yields
// errs.ErrConflict.
type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*catalog.Category, error) {
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

	if err := uow.CategoryRepository().Add(ctx, cmd.Category()); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cmd.Category(), nil
}
