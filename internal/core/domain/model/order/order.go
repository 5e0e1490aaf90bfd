package order

import (
	"errors"
	"sort"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer order.
//
// Invariants:
//   - at least one item; items are immutable after construction
//   - subtotal equals the sum of item totals
//   - total equals subtotal + tax + shipping
//   - stock restitution happens at most once over the order's lifetime,
//     tracked by the stockRestored flag
//
// The aggregate is owned by the creation transaction at birth and mutated
// only through ChangeStatus / MarkStockRestored afterwards.
type Order struct {
	id       kernel.UUID
	number   Number
	customer Customer
	status   Status
	items    []Item

	subtotal kernel.Money
	tax      kernel.Money
	shipping kernel.Money
	total    kernel.Money

	paymentMethod   string
	shippingAddress string
	billingAddress  string
	notes           string

	stockRestored bool
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewOrder creates an order in pending status. The subtotal and total are
// derived from the items and the pass-through tax and shipping amounts.
func NewOrder(
	id kernel.UUID,
	number Number,
	customer Customer,
	items []Item,
	tax, shipping kernel.Money,
	paymentMethod, shippingAddress, billingAddress, notes string,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomer(customer),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.tax = tax
	o.shipping = shipping
	o.recomputeTotals()

	o.paymentMethod = paymentMethod
	o.shippingAddress = shippingAddress
	o.billingAddress = billingAddress
	o.notes = notes

	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its status,
// restitution flag and timestamps.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	customer Customer,
	items []Item,
	status Status,
	tax, shipping kernel.Money,
	paymentMethod, shippingAddress, billingAddress, notes string,
	stockRestored bool,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, number, customer, items, tax, shipping,
		paymentMethod, shippingAddress, billingAddress, notes)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.stockRestored = stockRestored
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the instance came out of a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID        { return o.id }
func (o *Order) Number() Number         { return o.number }
func (o *Order) Customer() Customer     { return o.customer }
func (o *Order) Status() Status         { return o.status }
func (o *Order) Subtotal() kernel.Money { return o.subtotal }
func (o *Order) Tax() kernel.Money      { return o.tax }
func (o *Order) Shipping() kernel.Money { return o.shipping }
func (o *Order) Total() kernel.Money    { return o.total }
func (o *Order) PaymentMethod() string  { return o.paymentMethod }
func (o *Order) ShippingAddress() string { return o.shippingAddress }
func (o *Order) BillingAddress() string { return o.billingAddress }
func (o *Order) Notes() string          { return o.notes }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }

// Items returns the line items in their original request order.
// The returned slice is a copy.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ItemsByProductID returns the line items sorted by ascending product id.
// Stock mutations iterate in this order so two orders reserving overlapping
// products always lock product rows in the same sequence.
func (o *Order) ItemsByProductID() []Item {
	items := o.Items()
	sort.Slice(items, func(i, j int) bool {
		return items[i].ProductID().String() < items[j].ProductID().String()
	})
	return items
}

// StockRestored reports whether this order's reserved stock has already been
// returned to the ledger.
func (o *Order) StockRestored() bool {
	return o.stockRestored
}

// ChangeStatus overwrites the status and touches the update timestamp.
// Any status in the enum is accepted from any current status; the caller
// decides whether entering cancelled triggers restitution.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	o.updatedAt = time.Now().UTC()
	return nil
}

// NeedsRestitution reports whether this order still holds reserved stock
// that a cancellation or deletion must return to the ledger.
func (o *Order) NeedsRestitution() bool {
	return !o.stockRestored
}

// MarkStockRestored records that restitution has happened. Further calls to
// NeedsRestitution return false, which is what makes restitution a
// once-only event.
func (o *Order) MarkStockRestored() {
	o.stockRestored = true
	o.updatedAt = time.Now().UTC()
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) recomputeTotals() {
	subtotal := kernel.ZeroMoney()
	for _, it := range o.items {
		subtotal = subtotal.Add(it.Total())
	}
	o.subtotal = subtotal
	o.total = subtotal.Add(o.tax).Add(o.shipping)
}
