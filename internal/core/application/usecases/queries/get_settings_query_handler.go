package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetSettingsQueryHandler reads store-wide settings straight from the
// database.
type GetSettingsQueryHandler struct {
	db *gorm.DB
}

// NewGetSettingsQueryHandler creates a handler for settings lookups.
func NewGetSettingsQueryHandler(db *gorm.DB) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{db: db}
}

// Handle executes the lookup. The result maps category to key/value pairs;
// categories with no rows are absent.
func (h GetSettingsQueryHandler) Handle(ctx context.Context, query GetSettingsQuery) (map[string]map[string]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := "SELECT category, setting_key, setting_value FROM settings"
	args := make([]any, 0, 1)
	if category := query.Category(); category != nil {
		sql += " WHERE category = ?"
		args = append(args, category.String())
	}
	sql += " ORDER BY category, setting_key"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]map[string]string)
	for rows.Next() {
		var category, key, value string
		if err = rows.Scan(&category, &key, &value); err != nil {
			return nil, err
		}

		if out[category] == nil {
			out[category] = make(map[string]string)
		}
		out[category][key] = value
	}

	return out, rows.Err()
}
