package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	sku         string
	description string
	categoryID  *kernel.UUID
	price       kernel.Money
	salePrice   *kernel.Money
	stock       int

	isConstructed bool
}

// NewCreateProductCommand creates a catalog addition command. Name, SKU and
// a non-negative stock are validated here; pricing is validated by the
// Money constructors upstream.
func NewCreateProductCommand(
	productID kernel.UUID,
	name, sku, description string,
	categoryID *kernel.UUID,
	price kernel.Money,
	salePrice *kernel.Money,
	stock int,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{isConstructed: true}

	if err := productID.Validate(); err != nil {
		return CreateProductCommand{}, err
	}
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return CreateProductCommand{}, err
		}
		cid := *categoryID
		cmd.categoryID = &cid
	}

	cmd.productID = productID
	cmd.name = name
	cmd.sku = sku
	cmd.description = description
	cmd.price = price
	if salePrice != nil {
		sp := *salePrice
		cmd.salePrice = &sp
	}
	cmd.stock = stock
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	if !c.isConstructed {
		return ErrCreateProductCommandIsNotConstructed
	}
	return nil
}

func (c CreateProductCommand) ProductID() kernel.UUID { return c.productID }
func (c CreateProductCommand) Name() string           { return c.name }
func (c CreateProductCommand) SKU() string            { return c.sku }
func (c CreateProductCommand) Description() string    { return c.description }
func (c CreateProductCommand) Price() kernel.Money    { return c.price }
func (c CreateProductCommand) Stock() int             { return c.stock }

func (c CreateProductCommand) SalePrice() *kernel.Money {
	if c.salePrice == nil {
		return nil
	}
	sp := *c.salePrice
	return &sp
}

func (c CreateProductCommand) CategoryID() *kernel.UUID {
	if c.categoryID == nil {
		return nil
	}
	cid := *c.categoryID
	return &cid
}
