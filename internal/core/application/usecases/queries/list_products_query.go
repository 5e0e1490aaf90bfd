package queries

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery retrieves a page of catalog products, optionally
// filtered by status, category and a search term matched against name and
// SKU.
type ListProductsQuery struct {
	status     *product.Status
	categoryID *kernel.UUID
	search     string
	page       int
	limit      int

	isConstructed bool
}

// NewListProductsQuery creates a paged catalog listing.
func NewListProductsQuery(
	status *product.Status,
	categoryID *kernel.UUID,
	search string,
	page, limit int,
) (ListProductsQuery, error) {
	q := ListProductsQuery{isConstructed: true}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ListProductsQuery{}, err
		}
		s := *status
		q.status = &s
	}
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return ListProductsQuery{}, err
		}
		cid := *categoryID
		q.categoryID = &cid
	}

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	if page < 1 {
		return ListProductsQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if limit < 1 || limit > maxPageSize {
		return ListProductsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageSize)
	}

	q.search = strings.TrimSpace(search)
	q.page = page
	q.limit = limit
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	if !q.isConstructed {
		return ErrListProductsQueryIsNotConstructed
	}
	return nil
}

// Status returns the optional status filter.
func (q ListProductsQuery) Status() *product.Status {
	if q.status == nil {
		return nil
	}
	s := *q.status
	return &s
}

// CategoryID returns the optional category filter.
func (q ListProductsQuery) CategoryID() *kernel.UUID {
	if q.categoryID == nil {
		return nil
	}
	cid := *q.categoryID
	return &cid
}

// Search returns the trimmed search term, possibly empty.
func (q ListProductsQuery) Search() string { return q.search }

// Page returns the 1-based page number.
func (q ListProductsQuery) Page() int { return q.page }

// Limit returns the page size.
func (q ListProductsQuery) Limit() int { return q.limit }

// Offset returns the row offset the page starts at.
func (q ListProductsQuery) Offset() int { return (q.page - 1) * q.limit }
