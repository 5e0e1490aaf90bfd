package queries

import (
	"context"

	"gorm.io/gorm"
)

const recentOrdersLimit = 5

// GetDashboardStatsQueryHandler assembles the admin dashboard numbers from
// several independent reads. The numbers are a snapshot, not a consistent
// point-in-time view.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard stats.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the aggregate reads.
func (h GetDashboardStatsQueryHandler) Handle(ctx context.Context, query GetDashboardStatsQuery) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	var resp GetDashboardStatsQueryResponse
	db := h.db.WithContext(ctx)

	row := db.Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COALESCE(SUM(total_amount) FILTER (WHERE status != 'cancelled'), 0)
		FROM orders
	`).Row()
	if err := row.Scan(&resp.TotalOrders, &resp.PendingOrders, &resp.TotalRevenue); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	row = db.Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active' AND stock <= ?)
		FROM products
	`, query.LowStockThreshold()).Row()
	if err := row.Scan(&resp.TotalProducts, &resp.LowStockCount); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	if err := db.Raw(`SELECT COUNT(*) FROM users WHERE role = 'customer'`).
		Scan(&resp.TotalCustomers).Error; err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	recentQuery, err := NewListOrdersQuery(nil, "", 1, recentOrdersLimit)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	recent, err := NewListOrdersQueryHandler(h.db).Handle(ctx, recentQuery)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	resp.RecentOrders = recent.Data

	return resp, nil
}
