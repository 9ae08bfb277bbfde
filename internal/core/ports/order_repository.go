package ports

import (
	"context"

	"orderapi/internal/core/domain/model/kernel"
	"orderapi/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their item collections. It is the durable owner of record; the application
// layer is the sole writer going through it.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// The order must be valid and its identifier must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate and inserts its
	// current item collection. Stale item rows are removed via DeleteItems
	// before updating; Update does not remove them itself.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by identifier, items included.
	// Returns an ObjectNotFoundError when the identifier is absent.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll retrieves every stored order with its items, in store-defined
	// order. An empty store yields an empty slice, not an error.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes the order and, transitively, its items.
	// Returns an ObjectNotFoundError when the identifier is absent.
	Delete(ctx context.Context, id kernel.OrderID) error

	// DeleteItems removes every item row belonging to the order, leaving the
	// order record itself in place. Used when the item set is replaced.
	DeleteItems(ctx context.Context, aggregate *order.Order) error
}
