// Package productrepo persists catalog products, including the guarded
// stock mutations the order flows rely on.
package productrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductDTO is the database shape of a catalog product.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	SKU         string `gorm:"column:sku;uniqueIndex"`
	Description string
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	Price       decimal.Decimal  `gorm:"type:numeric(12,2)"`
	SalePrice   decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Stock       int
	Status      string `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	var salePrice decimal.NullDecimal
	if sp := aggregate.SalePrice(); sp != nil {
		salePrice = decimal.NullDecimal{Decimal: sp.Decimal(), Valid: true}
	}

	var categoryID *uuid.UUID
	if cid := aggregate.CategoryID(); cid != nil {
		raw := cid.Bytes()
		categoryID = &raw
	}

	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		SKU:         aggregate.SKU(),
		Description: aggregate.Description(),
		CategoryID:  categoryID,
		Price:       aggregate.Price().Decimal(),
		SalePrice:   salePrice,
		Stock:       aggregate.Stock(),
		Status:      string(aggregate.Status()),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromDecimal(dto.Price)
	if err != nil {
		return nil, err
	}

	var salePrice *kernel.Money
	if dto.SalePrice.Valid {
		sp, spErr := kernel.NewMoneyFromDecimal(dto.SalePrice.Decimal)
		if spErr != nil {
			return nil, spErr
		}
		salePrice = &sp
	}

	var categoryID *kernel.UUID
	if dto.CategoryID != nil {
		cid, cidErr := kernel.UUIDFromBytes(dto.CategoryID[:])
		if cidErr != nil {
			return nil, cidErr
		}
		categoryID = &cid
	}

	return product.RestoreProduct(id, dto.Name, dto.SKU, dto.Description,
		categoryID, price, salePrice, dto.Stock, product.Status(dto.Status))
}
