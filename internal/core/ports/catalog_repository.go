// Package ports defines the contracts between the use cases and the
// infrastructure adapters: repositories, the unit of work and the outbound
// event publisher.
package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
)

// CategoryRepository persists catalog categories.
type CategoryRepository interface {
	// Add stores a new category. A duplicate slug yields errs.ErrConflict.
	Add(ctx context.Context, category *catalog.Category) error

	Get(ctx context.Context, id kernel.UUID) (*catalog.Category, error)

	// Delete removes a category. Returns errs.ErrObjectNotFound when absent and
	// errs.ErrConflict while menu items still reference it.
	Delete(ctx context.Context, id kernel.UUID) error
}

// MenuItemRepository persists menu items.
type MenuItemRepository interface {
	// Add stores a new item. An unknown category yields errs.ErrObjectNotFound.
	Add(ctx context.Context, item *catalog.MenuItem) error

	Update(ctx context.Context, item *catalog.MenuItem) error

	Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)

	// Delete removes an item. Returns errs.ErrConflict while an order item
	// still references it; cart lines holding it are removed with it.
	Delete(ctx context.Context, id kernel.UUID) error
}
