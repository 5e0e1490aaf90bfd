// Package product contains the catalog product entity. The product's stock
// column is the authoritative per-product available-quantity counter; every
// mutation of it happens inside an order transaction, never through plain
// catalog updates racing with reservations.
package product

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Status marks whether a product can be ordered.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Validate checks the status against the fixed enum.
func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusInactive:
		return nil
	default:
		return errs.NewValueIsInvalidError("product status")
	}
}

// Product is a catalog entry. Price is the regular unit price; SalePrice,
// when set, takes precedence as the effective price at order time.
//
// Invariants:
//   - stock >= 0 at all times
//   - price (and sale price, when present) is non-negative
//   - only active products can be ordered
type Product struct {
	id          kernel.UUID
	name        string
	sku         string
	description string
	categoryID  *kernel.UUID
	price       kernel.Money
	salePrice   *kernel.Money
	stock       int
	status      Status

	isConstructed bool
}

// NewProduct creates a validated product with the given initial stock.
func NewProduct(id kernel.UUID, name, sku string, price kernel.Money, stock int) (*Product, error) {
	p := &Product{
		status:        StatusActive,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setSKU(sku),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	p.price = price
	return p, nil
}

// RestoreProduct reconstructs a product from persistence without reapplying
// creation-time defaults.
func RestoreProduct(
	id kernel.UUID,
	name, sku, description string,
	categoryID *kernel.UUID,
	price kernel.Money,
	salePrice *kernel.Money,
	stock int,
	status Status,
) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setSKU(sku),
		p.setStock(stock),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	p.description = description
	p.categoryID = copyCategoryID(categoryID)
	p.price = price
	p.salePrice = salePrice
	p.status = status
	return p, nil
}

// Validate ensures the instance came out of a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID   { return p.id }
func (p *Product) Name() string      { return p.name }
func (p *Product) SKU() string       { return p.sku }
func (p *Product) Description() string { return p.description }
func (p *Product) Price() kernel.Money { return p.price }
func (p *Product) Stock() int        { return p.stock }
func (p *Product) Status() Status    { return p.status }

// CategoryID returns the catalog category the product belongs to, or nil
// when uncategorized.
func (p *Product) CategoryID() *kernel.UUID {
	return copyCategoryID(p.categoryID)
}

// SetCategory moves the product to a category, or out of any when nil.
func (p *Product) SetCategory(categoryID *kernel.UUID) error {
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return err
		}
	}
	p.categoryID = copyCategoryID(categoryID)
	return nil
}

// SalePrice returns the promotional price, or nil when none is set.
func (p *Product) SalePrice() *kernel.Money {
	return p.salePrice
}

// EffectivePrice is the unit price an order pays right now: the sale price
// when present, the regular price otherwise.
func (p *Product) EffectivePrice() kernel.Money {
	if p.salePrice != nil {
		return *p.salePrice
	}
	return p.price
}

// IsActive reports whether the product can appear in new orders.
func (p *Product) IsActive() bool {
	return p.status == StatusActive
}

// SetDescription updates the free-text description.
func (p *Product) SetDescription(description string) {
	p.description = description
}

// SetPricing replaces the regular and sale prices.
func (p *Product) SetPricing(price kernel.Money, salePrice *kernel.Money) {
	p.price = price
	p.salePrice = salePrice
}

// SetStatus changes the catalog status.
func (p *Product) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

// SetStock replaces the stock level from a catalog update. Reservation and
// restitution never go through here; they are conditional updates executed
// by the product repository inside an order transaction.
func (p *Product) SetStock(stock int) error {
	return p.setStock(stock)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	p.sku = sku
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidError("stock must not be negative")
	}
	p.stock = stock
	return nil
}

func copyCategoryID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	copied := *id
	return &copied
}
