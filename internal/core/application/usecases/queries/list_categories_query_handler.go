package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/core/domain/model/kernel"
)

// ListCategoriesQueryHandler reads the category tree straight from the
// database.
type ListCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewListCategoriesQueryHandler creates a handler for category listings.
func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db}
}

// Handle executes the listing, sorted by category name.
func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.slug,
			c.description,
			c.parent_id,
			COALESCE(p.name, ''),
			c.status,
			(SELECT COUNT(*) FROM products WHERE category_id = c.id),
			c.created_at,
			c.updated_at
		FROM categories c
		LEFT JOIN categories p ON p.id = c.parent_id
		ORDER BY c.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]CategoryResponse, 0)
	for rows.Next() {
		var resp CategoryResponse
		var id uuid.UUID
		var parentID *uuid.UUID

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Slug,
			&resp.Description,
			&parentID,
			&resp.ParentName,
			&resp.Status,
			&resp.ProductsCount,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		); err != nil {
			return nil, err
		}

		categoryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = categoryID
		if parentID != nil {
			pid, pidErr := kernel.UUIDFromBytes(parentID[:])
			if pidErr != nil {
				return nil, pidErr
			}
			resp.ParentID = &pid
		}
		categories = append(categories, resp)
	}

	return categories, rows.Err()
}
