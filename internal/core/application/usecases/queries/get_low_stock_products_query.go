package queries

import (
	"errors"

	"storefront/internal/pkg/errs"
)

var ErrGetLowStockProductsQueryIsNotConstructed = errors.New(
	"GetLowStockProductsQuery must be created via NewGetLowStockProductsQuery constructor",
)

// GetLowStockProductsQuery retrieves active products whose stock has dropped
// to or below a threshold. Used by the dashboard and the periodic low-stock
// report.
type GetLowStockProductsQuery struct {
	threshold int

	isConstructed bool
}

// NewGetLowStockProductsQuery creates a low-stock lookup.
func NewGetLowStockProductsQuery(threshold int) (GetLowStockProductsQuery, error) {
	if threshold < 0 {
		return GetLowStockProductsQuery{}, errs.NewValueIsOutOfRangeError("threshold", threshold, 0, "unbounded")
	}
	return GetLowStockProductsQuery{threshold: threshold, isConstructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockProductsQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetLowStockProductsQueryIsNotConstructed
	}
	return nil
}

// Threshold returns the inclusive stock level cutoff.
func (q GetLowStockProductsQuery) Threshold() int { return q.threshold }
