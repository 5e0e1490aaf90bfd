package http

import (
	"time"

	openapitypes "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"storefront/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON error payload returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PaginationResponse describes the window a list response covers.
type PaginationResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type LoginRequest struct {
	Email    openapitypes.Email `json:"email"`
	Password string             `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type RegisterRequest struct {
	Name     string             `json:"name"`
	Email    openapitypes.Email `json:"email"`
	Password string             `json:"password"`
	Role     string             `json:"role,omitempty"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateUserRequest struct {
	Name     string  `json:"name"`
	Password *string `json:"password,omitempty"`
	Active   bool    `json:"active"`
}

type UserListResponse struct {
	Data       []UserResponse     `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

type ProductRequest struct {
	Name        string           `json:"name"`
	SKU         string           `json:"sku"`
	Description string           `json:"description"`
	CategoryID  *string          `json:"category_id,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	SalePrice   *decimal.Decimal `json:"sale_price,omitempty"`
	Stock       int              `json:"stock"`
	Status      string           `json:"status,omitempty"`
}

type ProductResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	SKU          string           `json:"sku"`
	Description  string           `json:"description"`
	CategoryID   *string          `json:"category_id,omitempty"`
	CategoryName string           `json:"category_name,omitempty"`
	Price        decimal.Decimal  `json:"price"`
	SalePrice    *decimal.Decimal `json:"sale_price,omitempty"`
	Stock        int              `json:"stock"`
	Status       string           `json:"status"`
}

type ProductListResponse struct {
	Data       []ProductResponse  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

type CategoryRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id,omitempty"`
	Status      string  `json:"status,omitempty"`
}

type CategoryResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Description   string  `json:"description"`
	ParentID      *string `json:"parent_id,omitempty"`
	ParentName    string  `json:"parent_name,omitempty"`
	Status        string  `json:"status"`
	ProductsCount int     `json:"products_count"`
}

type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   openapitypes.Email `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone,omitempty"`
	Items           []OrderItemRequest `json:"items"`
	TaxAmount       decimal.Decimal    `json:"tax_amount"`
	ShippingAmount  decimal.Decimal    `json:"shipping_amount"`
	PaymentMethod   string             `json:"payment_method,omitempty"`
	ShippingAddress string             `json:"shipping_address,omitempty"`
	BillingAddress  string             `json:"billing_address,omitempty"`
	Notes           string             `json:"notes,omitempty"`
}

type CreateOrderResponse struct {
	Message     string `json:"message"`
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductSKU  string          `json:"product_sku"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	OrderNumber     string              `json:"order_number"`
	CustomerName    string              `json:"customer_name"`
	CustomerEmail   string              `json:"customer_email"`
	CustomerPhone   string              `json:"customer_phone,omitempty"`
	Status          string              `json:"status"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	TaxAmount       decimal.Decimal     `json:"tax_amount"`
	ShippingAmount  decimal.Decimal     `json:"shipping_amount"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	PaymentMethod   string              `json:"payment_method,omitempty"`
	ShippingAddress string              `json:"shipping_address,omitempty"`
	BillingAddress  string              `json:"billing_address,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Items           []OrderItemResponse `json:"items"`
}

type OrderListResponse struct {
	Data       []OrderResponse    `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

type DashboardStatsResponse struct {
	TotalOrders    int             `json:"total_orders"`
	PendingOrders  int             `json:"pending_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalProducts  int             `json:"total_products"`
	LowStockCount  int             `json:"low_stock_count"`
	TotalCustomers int             `json:"total_customers"`
	RecentOrders   []OrderResponse `json:"recent_orders"`
}

func toPaginationResponse(p queries.Pagination) PaginationResponse {
	return PaginationResponse{Page: p.Page, Limit: p.Limit, Total: p.Total, Pages: p.Pages}
}

func toUserResponse(u queries.UserResponse) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

func toProductResponse(p queries.ProductResponse) ProductResponse {
	resp := ProductResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		SKU:          p.SKU,
		Description:  p.Description,
		CategoryName: p.CategoryName,
		Price:        p.Price,
		SalePrice:    p.SalePrice,
		Stock:        p.Stock,
		Status:       p.Status,
	}
	if p.CategoryID != nil {
		id := p.CategoryID.String()
		resp.CategoryID = &id
	}
	return resp
}

func toProductResponses(products []queries.ProductResponse) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

func toCategoryResponse(c queries.CategoryResponse) CategoryResponse {
	resp := CategoryResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Slug:          c.Slug,
		Description:   c.Description,
		ParentName:    c.ParentName,
		Status:        c.Status,
		ProductsCount: c.ProductsCount,
	}
	if c.ParentID != nil {
		id := c.ParentID.String()
		resp.ParentID = &id
	}
	return resp
}

func toOrderResponse(o queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			ProductSKU:  item.ProductSKU,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       item.Total,
		}
	}

	return OrderResponse{
		ID:              o.ID.String(),
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		Status:          o.Status,
		Subtotal:        o.Subtotal,
		TaxAmount:       o.Tax,
		ShippingAmount:  o.Shipping,
		TotalAmount:     o.Total,
		PaymentMethod:   o.PaymentMethod,
		ShippingAddress: o.ShippingAddress,
		BillingAddress:  o.BillingAddress,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Items:           items,
	}
}

func toOrderResponses(orders []queries.OrderResponse) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}
