// Package commands contains business operations that modify system state.
// Every handler follows the same shape: validate the command, authorize the
// caller, open a unit of work, apply the change through repositories and
// commit.
package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/ports"
)

// Unit of Work interfaces narrow ports.UnitOfWork to the repositories each
// handler actually touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// CatalogUoW manages transactions for category and menu item changes.
	CatalogUoW interface {
		TxManager
		CategoryRepoFactory
		MenuItemRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// CartUoW manages transactions for cart changes. Menu items are read for
	// their current price.
	CartUoW interface {
		TxManager
		CartRepoFactory
		MenuItemRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW spans the cart and the order written from it.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   lines, err := uow.CartRepository().ListForUpdate(ctx, customerID)
	//   // ... snapshot lines into an order
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions for order fulfilment. Users are read to
	// check crew membership.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UserUoW manages transactions for role membership changes.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// OutboxUoW manages the relay transaction over stored events.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	// MenuItemCache drops cached menu items after they change.
	MenuItemCache interface {
		Invalidate(ctx context.Context, id kernel.UUID)
	}
)
