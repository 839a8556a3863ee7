package commands

import (
	"context"

	"littlelemon/internal/core/domain/services"
)

// DeleteCategoryCommandHandler removes an empty category. Menu items still in
// the category make it fail with errs.ErrConflict.
type DeleteCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

func NewDeleteCategoryCommandHandler(uowFactory CatalogUoWFactory) DeleteCategoryCommandHandler {
	return DeleteCategoryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h DeleteCategoryCommandHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
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

	if err := uow.CategoryRepository().Delete(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
