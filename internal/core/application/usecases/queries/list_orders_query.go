package queries

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ListOrdersQuery retrieves a page of orders, optionally filtered by status
// and by a search term matched against the order number and customer
// name/email.
type ListOrdersQuery struct {
	status *order.Status
	search string
	page   int
	limit  int

	isConstructed bool
}

// NewListOrdersQuery creates a paged order listing. Zero page/limit fall
// back to the defaults; out-of-range values are rejected.
func NewListOrdersQuery(status *order.Status, search string, page, limit int) (ListOrdersQuery, error) {
	q := ListOrdersQuery{isConstructed: true}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		s := *status
		q.status = &s
	}

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	if page < 1 {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if limit < 1 || limit > maxPageSize {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageSize)
	}

	q.search = strings.TrimSpace(search)
	q.page = page
	q.limit = limit
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	if !q.isConstructed {
		return ErrListOrdersQueryIsNotConstructed
	}
	return nil
}

// Status returns the optional status filter.
func (q ListOrdersQuery) Status() *order.Status {
	if q.status == nil {
		return nil
	}
	s := *q.status
	return &s
}

// Search returns the trimmed search term, possibly empty.
func (q ListOrdersQuery) Search() string { return q.search }

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int { return q.page }

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int { return q.limit }

// Offset returns the row offset the page starts at.
func (q ListOrdersQuery) Offset() int { return (q.page - 1) * q.limit }
