package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves one catalog product.
type GetProductQuery struct {
	productID kernel.UUID

	isConstructed bool
}

// NewGetProductQuery creates a single-product lookup.
func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}
	return GetProductQuery{productID: productID, isConstructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetProductQueryIsNotConstructed
	}
	return nil
}

// ProductID returns the product identifier to look up.
func (q GetProductQuery) ProductID() kernel.UUID { return q.productID }
