package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products, including
// the two stock mutations the order flows depend on.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Delete removes a product. Returns ObjectNotFoundError when no row
	// was removed.
	Delete(ctx context.Context, id kernel.UUID) error

	// DecrementStock atomically subtracts qty from the product's stock,
	// guarded so the level can never go below zero. When the guard fails
	// it returns InsufficientStockError carrying the current level; when
	// the product does not exist it returns ObjectNotFoundError.
	DecrementStock(ctx context.Context, id kernel.UUID, qty int) error

	// RestoreStock atomically adds qty back to the product's stock.
	// Products deleted since the order was placed are skipped silently.
	RestoreStock(ctx context.Context, id kernel.UUID, qty int) error
}
