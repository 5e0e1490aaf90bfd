// Package ports defines the persistence contracts between the core and the
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored as a header row plus its item rows; all methods operate
// on the aggregate as a whole.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order's header row.
	// Items are immutable after creation and are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order while holding a row lock on its header
	// until the surrounding transaction ends. Lifecycle handlers use it so
	// that concurrent status changes and deletes serialize per order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and, via cascade, its items.
	// Returns ObjectNotFoundError when no row was removed.
	Delete(ctx context.Context, id kernel.UUID) error

	// NextOrderNumber allocates the next sequence value for the given day
	// and returns the formatted order number. Allocation happens inside the
	// current transaction; two concurrent creations can never observe the
	// same sequence value.
	NextOrderNumber(ctx context.Context, day time.Time) (order.Number, error)
}
