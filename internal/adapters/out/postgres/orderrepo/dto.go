// Package orderrepo persists order aggregates: a header row in "orders",
// item rows in "order_items", and the per-day sequence counter rows that
// back order number allocation.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderDTO is the database shape of an order header.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber     string     `gorm:"uniqueIndex"`
	CustomerID      *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Status          string          `gorm:"index"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(12,2)"`
	TaxAmount       decimal.Decimal `gorm:"type:numeric(12,2)"`
	ShippingAmount  decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentMethod   string
	ShippingAddress string
	BillingAddress  string
	Notes           string
	StockRestored   bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is the database shape of one order line. Product name, SKU
// and price are the denormalized copy taken at purchase time.
type OrderItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	ProductName string
	ProductSKU  string
	Quantity    int
	Price       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderCounterDTO is one per-day sequence counter row. Day is the UTC day
// formatted as YYYYMMDD.
type OrderCounterDTO struct {
	Day     string `gorm:"primaryKey"`
	LastSeq int
}

// TableName overrides GORM's default naming to use "order_counters".
func (OrderCounterDTO) TableName() string {
	return "order_counters"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var customerID *uuid.UUID
	if id := aggregate.Customer().AccountID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:          uuid.New(),
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			ProductSKU:  item.ProductSKU(),
			Quantity:    item.Quantity(),
			Price:       item.Price().Decimal(),
			Total:       item.Total().Decimal(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNumber:     aggregate.Number().String(),
		CustomerID:      customerID,
		CustomerName:    aggregate.Customer().Name(),
		CustomerEmail:   aggregate.Customer().Email(),
		CustomerPhone:   aggregate.Customer().Phone(),
		Status:          aggregate.Status().String(),
		Subtotal:        aggregate.Subtotal().Decimal(),
		TaxAmount:       aggregate.Tax().Decimal(),
		ShippingAmount:  aggregate.Shipping().Decimal(),
		TotalAmount:     aggregate.Total().Decimal(),
		PaymentMethod:   aggregate.PaymentMethod(),
		ShippingAddress: aggregate.ShippingAddress(),
		BillingAddress:  aggregate.BillingAddress(),
		Notes:           aggregate.Notes(),
		StockRestored:   aggregate.StockRestored(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		Items:           items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.NumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if cErr != nil {
			return nil, cErr
		}
		customerID = &cID
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerEmail, dto.CustomerPhone, customerID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	tax, err := kernel.NewMoneyFromDecimal(dto.TaxAmount)
	if err != nil {
		return nil, err
	}
	shipping, err := kernel.NewMoneyFromDecimal(dto.ShippingAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, number, customer, items,
		order.Status(dto.Status), tax, shipping,
		dto.PaymentMethod, dto.ShippingAddress, dto.BillingAddress, dto.Notes,
		dto.StockRestored, dto.CreatedAt, dto.UpdatedAt)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	price, err := kernel.NewMoneyFromDecimal(dto.Price)
	if err != nil {
		return order.Item{}, err
	}
	total, err := kernel.NewMoneyFromDecimal(dto.Total)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(productID, dto.ProductName, dto.ProductSKU, dto.Quantity, price, total)
}
