// Package queries contains the read side: handlers that bypass the domain
// model and read the database directly, returning flat response structs.
package queries

import (
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/core/domain/model/kernel"
)

// OrderItemResponse is one line of a stored order as the read side sees it.
// Product data is the denormalized copy captured at purchase time.
type OrderItemResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	ProductSKU  string
	Quantity    int
	Price       decimal.Decimal
	Total       decimal.Decimal
}

// OrderResponse is a stored order as the read side sees it.
type OrderResponse struct {
	ID              kernel.UUID
	OrderNumber     string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Status          string
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	Shipping        decimal.Decimal
	Total           decimal.Decimal
	PaymentMethod   string
	ShippingAddress string
	BillingAddress  string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []OrderItemResponse
}

// ProductResponse is a catalog product as the read side sees it.
type ProductResponse struct {
	ID           kernel.UUID
	Name         string
	SKU          string
	Description  string
	CategoryID   *kernel.UUID
	CategoryName string
	Price        decimal.Decimal
	SalePrice    *decimal.Decimal
	Stock        int
	Status       string
}

// CategoryResponse is a catalog category as the read side sees it, with the
// parent name and product count resolved.
type CategoryResponse struct {
	ID            kernel.UUID
	Name          string
	Slug          string
	Description   string
	ParentID      *kernel.UUID
	ParentName    string
	Status        string
	ProductsCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UserResponse is an account as the read side sees it. The password hash
// never appears here.
type UserResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Role      string
	Active    bool
	CreatedAt time.Time
}

// Pagination describes the window a list response covers.
type Pagination struct {
	Page  int
	Limit int
	Total int
	Pages int
}

// pages is ceil(total/limit) with zero rows yielding zero pages.
func newPagination(page, limit, total int) Pagination {
	pages := 0
	if total > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
