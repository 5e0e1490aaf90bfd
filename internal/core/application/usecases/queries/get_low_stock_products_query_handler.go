package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/internal/core/domain/model/kernel"
)

// GetLowStockProductsQueryHandler reads low-stock products from the database.
type GetLowStockProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockProductsQueryHandler creates a handler for low-stock lookups.
func NewGetLowStockProductsQueryHandler(db *gorm.DB) GetLowStockProductsQueryHandler {
	return GetLowStockProductsQueryHandler{db: db}
}

// Handle executes the lookup, scarcest products first.
func (h GetLowStockProductsQueryHandler) Handle(ctx context.Context, query GetLowStockProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			sku,
			description,
			price,
			sale_price,
			stock,
			status
		FROM products
		WHERE status = 'active' AND stock <= ?
		ORDER BY stock, name
	`, query.Threshold()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		var resp ProductResponse
		var id uuid.UUID
		var salePrice decimal.NullDecimal

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.SKU,
			&resp.Description,
			&resp.Price,
			&salePrice,
			&resp.Stock,
			&resp.Status,
		); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = productID
		if salePrice.Valid {
			sp := salePrice.Decimal
			resp.SalePrice = &sp
		}
		products = append(products, resp)
	}

	return products, rows.Err()
}
