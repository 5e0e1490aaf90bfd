package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/internal/core/domain/model/kernel"
)

// ListProductsQueryResponse is one page of catalog products.
type ListProductsQueryResponse struct {
	Data       []ProductResponse
	Pagination Pagination
}

// ListProductsQueryHandler reads catalog pages straight from the database.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

// NewListProductsQueryHandler creates a handler for catalog listings.
func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle executes the listing, sorted by product name.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) (ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListProductsQueryResponse{}, err
	}

	where := "1=1"
	args := make([]any, 0, 4)
	if status := query.Status(); status != nil {
		where += " AND p.status = ?"
		args = append(args, string(*status))
	}
	if categoryID := query.CategoryID(); categoryID != nil {
		where += " AND p.category_id = ?"
		args = append(args, categoryID.Bytes())
	}
	if search := query.Search(); search != "" {
		where += " AND (p.name ILIKE ? OR p.sku ILIKE ?)"
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}

	var total int
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM products p WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return ListProductsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.sku,
			p.description,
			p.category_id,
			COALESCE(c.name, ''),
			p.price,
			p.sale_price,
			p.stock,
			p.status
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE `+where+`
		ORDER BY p.name, p.id
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), query.Offset())...).Rows()
	if err != nil {
		return ListProductsQueryResponse{}, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0, query.Limit())
	for rows.Next() {
		var resp ProductResponse
		var id uuid.UUID
		var categoryID *uuid.UUID
		var salePrice decimal.NullDecimal

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.SKU,
			&resp.Description,
			&categoryID,
			&resp.CategoryName,
			&resp.Price,
			&salePrice,
			&resp.Stock,
			&resp.Status,
		); err != nil {
			return ListProductsQueryResponse{}, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListProductsQueryResponse{}, idErr
		}
		resp.ID = productID
		if categoryID != nil {
			cid, cidErr := kernel.UUIDFromBytes(categoryID[:])
			if cidErr != nil {
				return ListProductsQueryResponse{}, cidErr
			}
			resp.CategoryID = &cid
		}
		if salePrice.Valid {
			sp := salePrice.Decimal
			resp.SalePrice = &sp
		}
		products = append(products, resp)
	}
	if err = rows.Err(); err != nil {
		return ListProductsQueryResponse{}, err
	}

	return ListProductsQueryResponse{
		Data:       products,
		Pagination: newPagination(query.Page(), query.Limit(), total),
	}, nil
}
