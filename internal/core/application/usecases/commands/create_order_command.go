package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one requested product/quantity pair of a new order.
// Prices are never accepted from callers; the handler reads them from the
// catalog at creation time.
type OrderLine struct {
	productID kernel.UUID
	quantity  int
}

// NewOrderLine validates a single requested line.
func NewOrderLine(productID kernel.UUID, quantity int) (OrderLine, error) {
	if err := productID.Validate(); err != nil {
		return OrderLine{}, err
	}
	if quantity <= 0 {
		return OrderLine{}, errs.NewValueIsInvalidError("quantity")
	}
	return OrderLine{productID: productID, quantity: quantity}, nil
}

// ProductID returns the requested product identifier.
func (l OrderLine) ProductID() kernel.UUID { return l.productID }

// Quantity returns the requested unit count.
func (l OrderLine) Quantity() int { return l.quantity }

// CreateOrderCommand represents a request to place a new order: who is
// buying, what they want, and the pass-through amounts and addresses.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer order.Customer
	lines    []OrderLine
	tax      kernel.Money
	shipping kernel.Money

	paymentMethod   string
	shippingAddress string
	billingAddress  string
	notes           string

	isConstructed bool
}

// NewCreateOrderCommand creates a command to place an order.
// The customer must already be constructed; at least one line is required.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer order.Customer,
	lines []OrderLine,
	tax, shipping kernel.Money,
	paymentMethod, shippingAddress, billingAddress, notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{isConstructed: true}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.tax = tax
	cmd.shipping = shipping
	cmd.paymentMethod = paymentMethod
	cmd.shippingAddress = shippingAddress
	cmd.billingAddress = billingAddress
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrCreateOrderCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the identifier the new order will be stored under.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Customer returns the buyer details.
func (c CreateOrderCommand) Customer() order.Customer { return c.customer }

// Lines returns the requested product/quantity pairs in request order.
func (c CreateOrderCommand) Lines() []OrderLine {
	out := make([]OrderLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Tax returns the pass-through tax amount.
func (c CreateOrderCommand) Tax() kernel.Money { return c.tax }

// Shipping returns the pass-through shipping amount.
func (c CreateOrderCommand) Shipping() kernel.Money { return c.shipping }

// PaymentMethod returns the declared payment method.
func (c CreateOrderCommand) PaymentMethod() string { return c.paymentMethod }

// ShippingAddress returns the shipping address text.
func (c CreateOrderCommand) ShippingAddress() string { return c.shippingAddress }

// BillingAddress returns the billing address text.
func (c CreateOrderCommand) BillingAddress() string { return c.billingAddress }

// Notes returns free-form order notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
