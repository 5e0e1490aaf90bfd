package queries

import (
	"errors"

	"storefront/internal/core/domain/model/setting"
)

var ErrGetSettingsQueryIsNotConstructed = errors.New(
	"GetSettingsQuery must be created via NewGetSettingsQuery constructor",
)

// GetSettingsQuery retrieves store-wide settings grouped by category,
// optionally narrowed to one category.
type GetSettingsQuery struct {
	category *setting.Category

	isConstructed bool
}

// NewGetSettingsQuery creates a settings lookup. A nil category means all
// categories.
func NewGetSettingsQuery(category *setting.Category) (GetSettingsQuery, error) {
	q := GetSettingsQuery{isConstructed: true}

	if category != nil {
		if err := category.Validate(); err != nil {
			return GetSettingsQuery{}, err
		}
		c := *category
		q.category = &c
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSettingsQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetSettingsQueryIsNotConstructed
	}
	return nil
}

// Category returns the optional category filter.
func (q GetSettingsQuery) Category() *setting.Category {
	if q.category == nil {
		return nil
	}
	c := *q.category
	return &c
}
