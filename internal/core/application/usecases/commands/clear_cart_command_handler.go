package commands

import (
	"context"

	"littlelemon/internal/core/domain/services"
)

// ClearCartCommandHandler deletes every line of the caller's cart. Clearing
// an empty cart succeeds.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
	policy     services.AccessPolicy
}

func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Caller(), services.OpClearCart); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CartRepository().Clear(ctx, cmd.Caller().ID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
