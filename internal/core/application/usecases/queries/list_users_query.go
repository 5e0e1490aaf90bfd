package queries

import (
	"errors"

	"storefront/internal/pkg/errs"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery retrieves a page of accounts for the admin panel.
type ListUsersQuery struct {
	page  int
	limit int

	isConstructed bool
}

// NewListUsersQuery creates a paged account listing.
func NewListUsersQuery(page, limit int) (ListUsersQuery, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	if page < 1 {
		return ListUsersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if limit < 1 || limit > maxPageSize {
		return ListUsersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageSize)
	}
	return ListUsersQuery{page: page, limit: limit, isConstructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUsersQuery) Validate() error {
	if !q.isConstructed {
		return ErrListUsersQueryIsNotConstructed
	}
	return nil
}

// Page returns the 1-based page number.
func (q ListUsersQuery) Page() int { return q.page }

// Limit returns the page size.
func (q ListUsersQuery) Limit() int { return q.limit }

// Offset returns the row offset the page starts at.
func (q ListUsersQuery) Offset() int { return (q.page - 1) * q.limit }
