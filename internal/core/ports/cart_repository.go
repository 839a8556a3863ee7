package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
)

// CartRepository persists cart lines keyed by (user, menu item).
type CartRepository interface {
	// Add inserts the line, or merges its quantity into the existing line for
	// the same menu item in a single atomic statement. The existing line keeps
	// its unit price. Returns the stored line, or errs.ErrValueIsOutOfRange
	// when the merged quantity would exceed cart.MaxQuantity.
	Add(ctx context.Context, line *cart.Line) (*cart.Line, error)

	// List returns the user's lines without locking them.
	List(ctx context.Context, userID kernel.UUID) ([]*cart.Line, error)

	// ListForUpdate returns the user's lines and locks them until the
	// surrounding transaction ends.
	ListForUpdate(ctx context.Context, userID kernel.UUID) ([]*cart.Line, error)

	// Remove deletes exactly the given lines.
	Remove(ctx context.Context, userID kernel.UUID, menuItemIDs []kernel.UUID) error

	// Clear deletes every line of the user. Clearing an empty cart succeeds.
	Clear(ctx context.Context, userID kernel.UUID) error
}
