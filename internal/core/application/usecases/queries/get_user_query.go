package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery retrieves one account.
type GetUserQuery struct {
	userID kernel.UUID

	isConstructed bool
}

// NewGetUserQuery creates a single-account lookup.
func NewGetUserQuery(userID kernel.UUID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}
	return GetUserQuery{userID: userID, isConstructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetUserQueryIsNotConstructed
	}
	return nil
}

// UserID returns the account identifier to look up.
func (q GetUserQuery) UserID() kernel.UUID { return q.userID }
