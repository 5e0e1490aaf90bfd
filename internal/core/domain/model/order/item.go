package order

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Item is one order line. It denormalizes the product name, SKU and unit
// price at the time of purchase; the referenced product may change or
// disappear later without affecting the order.
//
// Items are immutable after the order is created. Total is always
// price * quantity.
type Item struct {
	productID   kernel.UUID
	productName string
	productSKU  string
	quantity    int
	price       kernel.Money
	total       kernel.Money
}

// NewItem builds a validated line item. The total is derived, never passed in.
func NewItem(productID kernel.UUID, productName, productSKU string, quantity int, price kernel.Money) (Item, error) {
	it := Item{}

	if err := errors.Join(
		it.setProductID(productID),
		it.setProductName(productName),
		it.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	it.productSKU = productSKU
	it.price = price
	it.total = price.MulQty(quantity)
	return it, nil
}

// RestoreItem reconstructs a line item from persistence, trusting the stored
// total (it was derived at creation and items are immutable).
func RestoreItem(productID kernel.UUID, productName, productSKU string, quantity int, price, total kernel.Money) (Item, error) {
	it, err := NewItem(productID, productName, productSKU, quantity, price)
	if err != nil {
		return Item{}, err
	}
	if !it.total.IsEqual(total) {
		return Item{}, errs.NewValueIsInvalidError("item total does not match price * quantity")
	}
	return it, nil
}

func (it Item) ProductID() kernel.UUID { return it.productID }
func (it Item) ProductName() string    { return it.productName }
func (it Item) ProductSKU() string     { return it.productSKU }
func (it Item) Quantity() int          { return it.quantity }
func (it Item) Price() kernel.Money    { return it.price }
func (it Item) Total() kernel.Money    { return it.total }

func (it *Item) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	it.productID = id
	return nil
}

func (it *Item) setProductName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product_name")
	}
	it.productName = name
	return nil
}

func (it *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity must be a positive integer")
	}
	it.quantity = quantity
	return nil
}
