package categoryrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/domain/model/category"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Postgres unique_violation.
const uniqueViolationCode = "23505"

// GormCategoryRepository implements ports.CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM category repository.
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Add saves a new category. A duplicate slug trips the unique index and is
// reported as a validation error.
func (r *GormCategoryRepository) Add(ctx context.Context, aggregate *category.Category) error {
	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Create(&dto).Error
	return mapSlugConflict(err)
}

// Update rewrites a category.
func (r *GormCategoryRepository) Update(ctx context.Context, aggregate *category.Category) error {
	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CategoryDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "Slug", "Description", "ParentID", "Status", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return mapSlugConflict(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a category by ID.
func (r *GormCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*category.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a category. Callers are expected to have verified the
// category is unreferenced; the products foreign key is not cascaded.
func (r *GormCategoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CategoryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", id.String())
	}

	return nil
}

// CountProducts returns how many products reference the category.
func (r *GormCategoryRepository) CountProducts(ctx context.Context, id kernel.UUID) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&productrepo.ProductDTO{}).
		Where("category_id = ?", id.Bytes()).
		Count(&count).Error
	return count, err
}

// CountChildren returns how many categories have this one as parent.
func (r *GormCategoryRepository) CountChildren(ctx context.Context, id kernel.UUID) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&CategoryDTO{}).
		Where("parent_id = ?", id.Bytes()).
		Count(&count).Error
	return count, err
}

func mapSlugConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return errs.NewValueIsInvalidErrorWithCause("slug", err)
	}
	return err
}
