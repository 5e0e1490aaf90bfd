package queries

import (
	"errors"
)

var ErrListCategoriesQueryIsNotConstructed = errors.New(
	"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
)

// ListCategoriesQuery retrieves every catalog category with its parent name
// and product count resolved. The category tree is small, so the listing is
// not paged.
type ListCategoriesQuery struct {
	isConstructed bool
}

// NewListCategoriesQuery creates a category listing.
func NewListCategoriesQuery() ListCategoriesQuery {
	return ListCategoriesQuery{isConstructed: true}
}

// Validate ensures the query was created through the constructor.
func (q ListCategoriesQuery) Validate() error {
	if !q.isConstructed {
		return ErrListCategoriesQueryIsNotConstructed
	}
	return nil
}
