package ports

import (
	"context"

	"storefront/internal/core/domain/model/category"
	"storefront/internal/core/domain/model/kernel"
)

// CategoryRepository persists catalog categories. Slug uniqueness is
// enforced at the storage level; Add and Update surface a violation as a
// validation error on "slug".
type CategoryRepository interface {
	// Add persists a new category.
	Add(ctx context.Context, c *category.Category) error

	// Update persists changes to an existing category.
	Update(ctx context.Context, c *category.Category) error

	// Get returns a category by id, or ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*category.Category, error)

	// Delete removes a category. Returns ObjectNotFoundError when no row
	// matches.
	Delete(ctx context.Context, id kernel.UUID) error

	// CountProducts returns how many products reference the category.
	CountProducts(ctx context.Context, id kernel.UUID) (int64, error)

	// CountChildren returns how many categories have this one as parent.
	CountChildren(ctx context.Context, id kernel.UUID) (int64, error)
}
