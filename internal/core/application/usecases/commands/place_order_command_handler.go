package commands

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
)

// ErrEmptyCart is returned when the caller's cart has no lines at checkout.
var ErrEmptyCart = services.ErrCartIsEmpty

// PlaceOrderCommandHandler converts a cart into an order in one transaction.
//
// The caller's cart lines are locked first. A concurrent checkout of the same
// cart waits for the locks and then finds the cart empty, so a cart is never
// ordered twice. Exactly the locked lines are removed; a line added after the
// lock was taken stays in the cart.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	policy     services.AccessPolicy
	checkout   services.Checkout
	now        func() time.Time
}

func NewPlaceOrderCommandHandler(uowFactory CheckoutUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		checkout:   services.NewCheckout(),
		now:        time.Now,
	}
}

// Handle returns the placed order, or ErrEmptyCart with no state change.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Caller(), services.OpPlaceOrder); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	customerID := cmd.Caller().ID

	lines, err := cartRepo.ListForUpdate(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	placed, err := h.checkout.PlaceOrder(cmd.OrderID(), customerID, lines, h.now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	ordered := make([]kernel.UUID, 0, len(lines))
	for _, l := range lines {
		ordered = append(ordered, l.MenuItemID())
	}
	if err = cartRepo.Remove(ctx, customerID, ordered); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
