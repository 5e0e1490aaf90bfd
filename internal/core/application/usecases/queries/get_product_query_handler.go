package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// GetProductQueryHandler reads one catalog product straight from the
// database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single-product lookups.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the lookup. Returns ObjectNotFoundError when the product
// does not exist.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	var resp ProductResponse
	var id uuid.UUID
	var categoryID *uuid.UUID
	var salePrice decimal.NullDecimal

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE p.id = ?
	`, query.ProductID().Bytes()).Row()

	err := row.Scan(
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
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ProductResponse{}, errs.NewObjectNotFoundError("product", query.ProductID())
	}
	if err != nil {
		return ProductResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProductResponse{}, err
	}
	resp.ID = productID

	if categoryID != nil {
		cid, cidErr := kernel.UUIDFromBytes(categoryID[:])
		if cidErr != nil {
			return ProductResponse{}, cidErr
		}
		resp.CategoryID = &cid
	}
	if salePrice.Valid {
		sp := salePrice.Decimal
		resp.SalePrice = &sp
	}

	return resp, nil
}
