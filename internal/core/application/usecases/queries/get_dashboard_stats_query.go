package queries

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the admin dashboard aggregates.
type GetDashboardStatsQuery struct {
	lowStockThreshold int

	isConstructed bool
}

// NewGetDashboardStatsQuery creates a dashboard stats lookup.
func NewGetDashboardStatsQuery(lowStockThreshold int) GetDashboardStatsQuery {
	return GetDashboardStatsQuery{lowStockThreshold: lowStockThreshold, isConstructed: true}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetDashboardStatsQueryIsNotConstructed
	}
	return nil
}

// LowStockThreshold returns the cutoff used for the low-stock counter.
func (q GetDashboardStatsQuery) LowStockThreshold() int { return q.lowStockThreshold }

// GetDashboardStatsQueryResponse carries the dashboard aggregates.
// Revenue excludes cancelled orders.
type GetDashboardStatsQueryResponse struct {
	TotalOrders    int
	PendingOrders  int
	TotalRevenue   decimal.Decimal
	TotalProducts  int
	LowStockCount  int
	TotalCustomers int
	RecentOrders   []OrderResponse
}
