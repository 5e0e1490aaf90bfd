// Package http exposes the storefront over a JSON REST API. Handlers do no
// business logic themselves: they translate requests into commands and
// queries, and use case errors into HTTP statuses.
package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/security"
)

// Server implements the HTTP API on top of the application's command and
// query handlers.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler
	deleteProductHandler     commands.DeleteProductCommandHandler
	createCategoryHandler    commands.CreateCategoryCommandHandler
	updateCategoryHandler    commands.UpdateCategoryCommandHandler
	deleteCategoryHandler    commands.DeleteCategoryCommandHandler
	registerUserHandler      commands.RegisterUserCommandHandler
	updateUserHandler        commands.UpdateUserCommandHandler
	deleteUserHandler        commands.DeleteUserCommandHandler
	updateSettingsHandler    commands.UpdateSettingsCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	listOrdersHandler        queries.ListOrdersQueryHandler
	getProductHandler        queries.GetProductQueryHandler
	listProductsHandler      queries.ListProductsQueryHandler
	listCategoriesHandler    queries.ListCategoriesQueryHandler
	getLowStockHandler       queries.GetLowStockProductsQueryHandler
	listUsersHandler         queries.ListUsersQueryHandler
	getUserHandler           queries.GetUserQueryHandler
	getSettingsHandler       queries.GetSettingsQueryHandler
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler

	users             ports.UserRepository
	tokens            *security.TokenIssuer
	lowStockThreshold int
	logger            *slog.Logger
}

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	CreateProduct     commands.CreateProductCommandHandler
	UpdateProduct     commands.UpdateProductCommandHandler
	DeleteProduct     commands.DeleteProductCommandHandler
	CreateCategory    commands.CreateCategoryCommandHandler
	UpdateCategory    commands.UpdateCategoryCommandHandler
	DeleteCategory    commands.DeleteCategoryCommandHandler
	RegisterUser      commands.RegisterUserCommandHandler
	UpdateUser        commands.UpdateUserCommandHandler
	DeleteUser        commands.DeleteUserCommandHandler
	UpdateSettings    commands.UpdateSettingsCommandHandler

	GetOrder          queries.GetOrderQueryHandler
	ListOrders        queries.ListOrdersQueryHandler
	GetProduct        queries.GetProductQueryHandler
	ListProducts      queries.ListProductsQueryHandler
	ListCategories    queries.ListCategoriesQueryHandler
	GetLowStock       queries.GetLowStockProductsQueryHandler
	ListUsers         queries.ListUsersQueryHandler
	GetUser           queries.GetUserQueryHandler
	GetSettings       queries.GetSettingsQueryHandler
	GetDashboardStats queries.GetDashboardStatsQueryHandler
}

// NewServer creates the HTTP server. The user repository is used read-only
// for login; all writes go through command handlers.
func NewServer(
	handlers Handlers,
	users ports.UserRepository,
	tokens *security.TokenIssuer,
	lowStockThreshold int,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       handlers.CreateOrder,
		updateOrderStatusHandler: handlers.UpdateOrderStatus,
		deleteOrderHandler:       handlers.DeleteOrder,
		createProductHandler:     handlers.CreateProduct,
		updateProductHandler:     handlers.UpdateProduct,
		deleteProductHandler:     handlers.DeleteProduct,
		createCategoryHandler:    handlers.CreateCategory,
		updateCategoryHandler:    handlers.UpdateCategory,
		deleteCategoryHandler:    handlers.DeleteCategory,
		registerUserHandler:      handlers.RegisterUser,
		updateUserHandler:        handlers.UpdateUser,
		deleteUserHandler:        handlers.DeleteUser,
		updateSettingsHandler:    handlers.UpdateSettings,

		getOrderHandler:          handlers.GetOrder,
		listOrdersHandler:        handlers.ListOrders,
		getProductHandler:        handlers.GetProduct,
		listProductsHandler:      handlers.ListProducts,
		listCategoriesHandler:    handlers.ListCategories,
		getLowStockHandler:       handlers.GetLowStock,
		listUsersHandler:         handlers.ListUsers,
		getUserHandler:           handlers.GetUser,
		getSettingsHandler:       handlers.GetSettings,
		getDashboardStatsHandler: handlers.GetDashboardStats,

		users:             users,
		tokens:            tokens,
		lowStockThreshold: lowStockThreshold,
		logger:            logger.With("component", "http_server"),
	}
}

// RegisterRoutes wires every endpoint onto the echo instance. The embedded
// OpenAPI document is validated while being mounted, so a malformed API
// description fails startup rather than the first documentation request.
func (s *Server) RegisterRoutes(e *echo.Echo) error {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	if err := registerAPIDocs(e); err != nil {
		return err
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public storefront surface.
	api.POST("/auth/login", s.Login)
	api.POST("/auth/register", s.Register)
	api.GET("/products", s.ListProducts)
	api.GET("/products/:id", s.GetProduct)
	api.GET("/categories", s.ListCategories)

	// Everything authenticated.
	authed := api.Group("", s.Authenticated)
	authed.GET("/auth/me", s.Me)
	authed.GET("/dashboard/stats", s.DashboardStats, s.AdminOnly)

	admin := api.Group("/admin", s.Authenticated, s.AdminOnly)

	admin.GET("/orders", s.ListOrders)
	admin.GET("/orders/:id", s.GetOrder)
	admin.POST("/orders", s.CreateOrder)
	admin.PUT("/orders/:id/status", s.UpdateOrderStatus)
	admin.DELETE("/orders/:id", s.DeleteOrder)

	admin.GET("/products", s.ListProducts)
	admin.GET("/products/low-stock", s.LowStockProducts)
	admin.GET("/products/:id", s.GetProduct)
	admin.POST("/products", s.CreateProduct)
	admin.PUT("/products/:id", s.UpdateProduct)
	admin.DELETE("/products/:id", s.DeleteProduct)

	admin.GET("/categories", s.ListCategories)
	admin.POST("/categories", s.CreateCategory)
	admin.PUT("/categories/:id", s.UpdateCategory)
	admin.DELETE("/categories/:id", s.DeleteCategory)

	admin.GET("/users", s.ListUsers)
	admin.GET("/users/:id", s.GetUser)
	admin.POST("/users", s.Register)
	admin.PUT("/users/:id", s.UpdateUser)
	admin.DELETE("/users/:id", s.DeleteUser)

	admin.GET("/settings", s.GetSettings)
	admin.PUT("/settings", s.UpdateSettings)

	return nil
}

// currentClaims returns the verified token claims, or nil outside an
// authenticated route.
func currentClaims(ctx echo.Context) *security.Claims {
	claims, _ := ctx.Get(claimsContextKey).(*security.Claims)
	return claims
}
