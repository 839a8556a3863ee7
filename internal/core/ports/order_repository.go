package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every write registers the aggregate with the unit of work so its recorded
// events reach the outbox in the same transaction.
type OrderRepository interface {
	// Add persists a new order together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists crew assignment and status. Items are immutable.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order; its items go with it.
	Delete(ctx context.Context, aggregate *order.Order) error
}
