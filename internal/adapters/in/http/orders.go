package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// ListOrders handles GET /api/admin/orders with optional status, search,
// page and limit parameters.
func (s *Server) ListOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		status = &parsed
	}

	page, err := queryInt(ctx, "page")
	if err != nil {
		return badRequest(ctx, "Invalid page parameter")
	}
	limit, err := queryInt(ctx, "limit")
	if err != nil {
		return badRequest(ctx, "Invalid limit parameter")
	}

	query, err := queries.NewListOrdersQuery(status, ctx.QueryParam("search"), page, limit)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderListResponse{
		Data:       toOrderResponses(result.Data),
		Pagination: toPaginationResponse(result.Pagination),
	})
}

// GetOrder handles GET /api/admin/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

// CreateOrder handles POST /api/admin/orders. The order, its number and
// every stock decrement commit atomically; a stock shortage answers 409.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customer, err := order.NewCustomer(req.CustomerName, string(req.CustomerEmail), req.CustomerPhone, nil)
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return badRequest(ctx, "Invalid product ID: "+item.ProductID)
		}
		line, lineErr := commands.NewOrderLine(productID, item.Quantity)
		if lineErr != nil {
			return writeError(ctx, lineErr)
		}
		lines = append(lines, line)
	}

	tax, err := kernel.NewMoneyFromDecimal(req.TaxAmount)
	if err != nil {
		return writeError(ctx, err)
	}
	shipping, err := kernel.NewMoneyFromDecimal(req.ShippingAmount)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		customer,
		lines,
		tax, shipping,
		req.PaymentMethod, req.ShippingAddress, req.BillingAddress, req.Notes,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		Message:     "Order created successfully",
		OrderID:     result.OrderID.String(),
		OrderNumber: result.OrderNumber.String(),
	})
}

// UpdateOrderStatus handles PUT /api/admin/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "Order status updated successfully"})
}

// DeleteOrder handles DELETE /api/admin/orders/:id. Only pending and
// cancelled orders may be removed.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}
