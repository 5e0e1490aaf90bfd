// Package settingsrepo persists store-wide settings as category-scoped
// key/value rows.
package settingsrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/core/domain/model/setting"
	"storefront/internal/pkg/errs"
)

// SettingDTO is one key/value row within a settings category.
type SettingDTO struct {
	Category string `gorm:"primaryKey"`
	Key      string `gorm:"primaryKey;column:setting_key"`
	Value    string `gorm:"column:setting_value"`
}

// TableName overrides GORM's default naming to use "settings".
func (SettingDTO) TableName() string {
	return "settings"
}

// GormSettingsRepository implements ports.SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get returns the value for a key within a category.
func (r *GormSettingsRepository) Get(ctx context.Context, category setting.Category, key string) (string, error) {
	if err := category.Validate(); err != nil {
		return "", err
	}
	if key == "" {
		return "", errs.NewValueIsRequiredError("key")
	}

	var dto SettingDTO
	err := r.db.WithContext(ctx).
		First(&dto, "category = ? AND setting_key = ?", category.String(), key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("setting", category.String()+"."+key)
		}
		return "", err
	}

	return dto.Value, nil
}

// GetAll returns every setting of one category as a map.
func (r *GormSettingsRepository) GetAll(ctx context.Context, category setting.Category) (map[string]string, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	var dtos []SettingDTO
	err := r.db.WithContext(ctx).
		Where("category = ?", category.String()).
		Order("setting_key").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(dtos))
	for _, dto := range dtos {
		out[dto.Key] = dto.Value
	}
	return out, nil
}

// Set upserts a key within a category.
func (r *GormSettingsRepository) Set(ctx context.Context, category setting.Category, key, value string) error {
	if err := category.Validate(); err != nil {
		return err
	}
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value"}),
	}).Create(&SettingDTO{Category: category.String(), Key: key, Value: value}).Error
}
