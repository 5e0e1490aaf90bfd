// Package order contains the order aggregate: the order header, its
// immutable line items, the customer identity, the day-scoped order number,
// and the status lifecycle.
//
// An order and its items are created together in one atomic unit and the
// items never change afterwards. Item rows denormalize the product name, SKU
// and unit price at purchase time, so historical orders are unaffected by
// later catalog price changes.
//
// Status transitions are deliberately permissive: any status in the fixed
// enum may overwrite any other (see Status). Inventory safety under this
// policy is carried by the stock-restored flag on the aggregate, which makes
// stock restitution a once-only event no matter how the status moves.
package order
