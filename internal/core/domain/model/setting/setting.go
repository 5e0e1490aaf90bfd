// Package setting defines the fixed groups store-wide settings are organized
// into. Values themselves are free-form strings stored per group and key.
package setting

import "storefront/internal/pkg/errs"

// Category is a settings group shown as one tab in the admin panel.
type Category string

const (
	CategoryStore         Category = "store"
	CategoryStyle         Category = "style"
	CategoryNotifications Category = "notifications"
	CategorySecurity      Category = "security"
	CategoryPayment       Category = "payment"
	CategoryShipping      Category = "shipping"
)

// AllCategories lists every known settings group.
func AllCategories() []Category {
	return []Category{
		CategoryStore,
		CategoryStyle,
		CategoryNotifications,
		CategorySecurity,
		CategoryPayment,
		CategoryShipping,
	}
}

// Validate checks the category against the known groups.
func (c Category) Validate() error {
	switch c {
	case CategoryStore, CategoryStyle, CategoryNotifications,
		CategorySecurity, CategoryPayment, CategoryShipping:
		return nil
	default:
		return errs.NewValueIsInvalidError("settings category")
	}
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}
