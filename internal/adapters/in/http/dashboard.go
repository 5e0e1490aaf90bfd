package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/core/application/usecases/queries"
)

// DashboardStats handles GET /api/dashboard/stats.
func (s *Server) DashboardStats(ctx echo.Context) error {
	query := queries.NewGetDashboardStatsQuery(s.lowStockThreshold)

	stats, err := s.getDashboardStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardStatsResponse{
		TotalOrders:    stats.TotalOrders,
		PendingOrders:  stats.PendingOrders,
		TotalRevenue:   stats.TotalRevenue,
		TotalProducts:  stats.TotalProducts,
		LowStockCount:  stats.LowStockCount,
		TotalCustomers: stats.TotalCustomers,
		RecentOrders:   toOrderResponses(stats.RecentOrders),
	})
}
