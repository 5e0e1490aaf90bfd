package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with all of its items.
type GetOrderQuery struct {
	orderID kernel.UUID

	isConstructed bool
}

// NewGetOrderQuery creates a single-order lookup.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, isConstructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetOrderQueryIsNotConstructed
	}
	return nil
}

// OrderID returns the order identifier to look up.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }
