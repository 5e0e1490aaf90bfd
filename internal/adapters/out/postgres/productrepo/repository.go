package productrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new product.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update rewrites a product. Stock is excluded: stock only moves through
// DecrementStock and RestoreStock, or through an explicit catalog edit that
// loads the row first.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "Description", "CategoryID", "Price", "SalePrice", "Stock", "Status", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a product.
func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}

// DecrementStock subtracts qty with a stock level guard in the WHERE
// clause. The row update is atomic: under any number of concurrent
// transactions the guard ensures stock never drops below zero, and losers
// simply match zero rows. A zero-row result is then disambiguated into
// "product gone" or "not enough stock".
func (r *GormProductRepository) DecrementStock(ctx context.Context, id kernel.UUID, qty int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if qty <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE products
		SET stock = stock - ?, updated_at = NOW()
		WHERE id = ? AND stock >= ?
	`, qty, id.Bytes(), qty)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var dto ProductDTO
		err := r.db.WithContext(ctx).Select("name", "stock").First(&dto, "id = ?", id.Bytes()).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("product", id.String())
		}
		if err != nil {
			return err
		}
		return errs.NewInsufficientStockError(id.String(), dto.Name, qty, dto.Stock)
	}

	return nil
}

// RestoreStock adds qty back. A missing product is not an error: the order
// being cancelled may reference a product that was deleted since.
func (r *GormProductRepository) RestoreStock(ctx context.Context, id kernel.UUID, qty int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if qty <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	return r.db.WithContext(ctx).Exec(`
		UPDATE products
		SET stock = stock + ?, updated_at = NOW()
		WHERE id = ?
	`, qty, id.Bytes()).Error
}
