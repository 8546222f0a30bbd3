package ports

import (
	"context"

	"rugops/internal/core/domain/model/kernel"
	"rugops/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders own their items exclusively: every method that stores or loads an
// order carries the full item set with it.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its items.
	// Either the whole order and every item persist, or none do.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate and upserts
	// its items. Fields not represented on the aggregate are never touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll retrieves every order with its items, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Exists reports whether an order with the given identifier is stored.
	// Used by migration to skip records that were already imported.
	Exists(ctx context.Context, id kernel.OrderID) (bool, error)

	// DeleteAll removes every order and item (administrative purge,
	// items before their parents).
	DeleteAll(ctx context.Context) error
}
