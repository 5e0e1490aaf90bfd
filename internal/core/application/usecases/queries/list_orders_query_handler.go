package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/core/domain/model/kernel"
)

// ListOrdersQueryResponse is one page of orders plus the window description.
type ListOrdersQueryResponse struct {
	Data       []OrderResponse
	Pagination Pagination
}

// ListOrdersQueryHandler reads order pages straight from the database.
// The count and the page share the same filters, so the pagination block
// always describes the filtered set.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Newest orders come first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := "1=1"
	args := make([]any, 0, 4)
	if status := query.Status(); status != nil {
		where += " AND status = ?"
		args = append(args, status.String())
	}
	if search := query.Search(); search != "" {
		where += " AND (order_number ILIKE ? OR customer_name ILIKE ? OR customer_email ILIKE ?)"
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	var total int
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE `+where+`
		ORDER BY created_at DESC, order_number DESC
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), query.Offset())...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0, query.Limit())
	orderIDs := make([]kernel.UUID, 0, query.Limit())
	for rows.Next() {
		var resp OrderResponse
		var id uuid.UUID

		if err = rows.Scan(
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
		); err != nil {
			return ListOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListOrdersQueryResponse{}, idErr
		}
		resp.ID = orderID
		orders = append(orders, resp)
		orderIDs = append(orderIDs, orderID)
	}
	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	items, err := loadOrderItems(ctx, h.db, orderIDs)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID.String()]
	}

	return ListOrdersQueryResponse{
		Data:       orders,
		Pagination: newPagination(query.Page(), query.Limit(), total),
	}, nil
}
