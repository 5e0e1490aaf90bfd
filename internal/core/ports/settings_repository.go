package ports

import (
	"context"

	"storefront/internal/core/domain/model/setting"
)

// SettingsRepository is a string key/value store for store-wide settings,
// grouped by settings category (store, payment, shipping, ...).
type SettingsRepository interface {
	// Get returns the value for a key within a category, or
	// ObjectNotFoundError.
	Get(ctx context.Context, category setting.Category, key string) (string, error)

	// GetAll returns every setting of one category as a map.
	GetAll(ctx context.Context, category setting.Category) (map[string]string, error)

	// Set inserts or overwrites a key within a category.
	Set(ctx context.Context, category setting.Category, key, value string) error
}
