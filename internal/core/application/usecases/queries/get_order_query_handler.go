package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// GetOrderQueryHandler reads one order straight from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns ObjectNotFoundError when the order
// does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var resp OrderResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_name,
			customer_email,
			customer_phone,
			status,
			subtotal,
			tax_amount,
			shipping_amount,
			total_amount,
			payment_method,
			shipping_address,
			billing_address,
			notes,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&resp.CustomerName,
		&resp.CustomerEmail,
		&resp.CustomerPhone,
		&resp.Status,
		&resp.Subtotal,
		&resp.Tax,
		&resp.Shipping,
		&resp.Total,
		&resp.PaymentMethod,
		&resp.ShippingAddress,
		&resp.BillingAddress,
		&resp.Notes,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	items, err := loadOrderItems(ctx, h.db, []kernel.UUID{orderID})
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Items = items[orderID.String()]

	return resp, nil
}

// loadOrderItems reads the item rows for a set of orders in one round trip.
// The result is keyed by the owning order's id string.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderIDs []kernel.UUID) (map[string][]OrderItemResponse, error) {
	out := make(map[string][]OrderItemResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(orderIDs))
	for _, oid := range orderIDs {
		ids = append(ids, oid.Bytes())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			product_name,
			product_sku,
			quantity,
			price,
			total
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, id
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var itemID, orderID, productID uuid.UUID

		if err = rows.Scan(
			&itemID,
			&orderID,
			&productID,
			&item.ProductName,
			&item.ProductSKU,
			&item.Quantity,
			&item.Price,
			&item.Total,
		); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}

		key := orderID.String()
		out[key] = append(out[key], item)
	}

	return out, rows.Err()
}
