package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to change a product's
// description, pricing, stock level or status.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	description string
	categoryID  *kernel.UUID
	price       kernel.Money
	salePrice   *kernel.Money
	stock       int
	status      product.Status

	isConstructed bool
}

// NewUpdateProductCommand creates a product update command.
func NewUpdateProductCommand(
	productID kernel.UUID,
	description string,
	categoryID *kernel.UUID,
	price kernel.Money,
	salePrice *kernel.Money,
	stock int,
	status product.Status,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{isConstructed: true}

	if err := errors.Join(
		productID.Validate(),
		status.Validate(),
	); err != nil {
		return UpdateProductCommand{}, err
	}
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return UpdateProductCommand{}, err
		}
		cid := *categoryID
		cmd.categoryID = &cid
	}

	cmd.productID = productID
	cmd.description = description
	cmd.price = price
	if salePrice != nil {
		sp := *salePrice
		cmd.salePrice = &sp
	}
	cmd.stock = stock
	cmd.status = status
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	if !c.isConstructed {
		return ErrUpdateProductCommandIsNotConstructed
	}
	return nil
}

func (c UpdateProductCommand) ProductID() kernel.UUID  { return c.productID }
func (c UpdateProductCommand) Description() string     { return c.description }
func (c UpdateProductCommand) Price() kernel.Money     { return c.price }
func (c UpdateProductCommand) Stock() int              { return c.stock }
func (c UpdateProductCommand) Status() product.Status  { return c.status }

func (c UpdateProductCommand) SalePrice() *kernel.Money {
	if c.salePrice == nil {
		return nil
	}
	sp := *c.salePrice
	return &sp
}

func (c UpdateProductCommand) CategoryID() *kernel.UUID {
	if c.categoryID == nil {
		return nil
	}
	cid := *c.categoryID
	return &cid
}
