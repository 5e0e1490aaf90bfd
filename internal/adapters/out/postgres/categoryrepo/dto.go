// Package categoryrepo persists catalog categories.
package categoryrepo

import (
	"time"

	"github.com/google/uuid"

	"storefront/internal/core/domain/model/category"
	"storefront/internal/core/domain/model/kernel"
)

// CategoryDTO is the database shape of a catalog category.
type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Slug        string `gorm:"uniqueIndex"`
	Description string
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	Status      string     `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming to use "categories".
func (CategoryDTO) TableName() string {
	return "categories"
}

func fromDomain(aggregate *category.Category) CategoryDTO {
	var parentID *uuid.UUID
	if pid := aggregate.ParentID(); pid != nil {
		raw := pid.Bytes()
		parentID = &raw
	}

	return CategoryDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Slug:        aggregate.Slug(),
		Description: aggregate.Description(),
		ParentID:    parentID,
		Status:      string(aggregate.Status()),
	}
}

func toDomain(dto CategoryDTO) (*category.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var parentID *kernel.UUID
	if dto.ParentID != nil {
		pid, pidErr := kernel.UUIDFromBytes(dto.ParentID[:])
		if pidErr != nil {
			return nil, pidErr
		}
		parentID = &pid
	}

	return category.RestoreCategory(id, dto.Name, dto.Slug, dto.Description,
		parentID, category.Status(dto.Status))
}
