package commands

import (
	"context"

	"storefront/internal/pkg/errs"
)

// DeleteCategoryCommandHandler removes categories that are no longer
// referenced. Categories with products or subcategories are protected.
type DeleteCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

// NewDeleteCategoryCommandHandler creates a handler for category removals.
func NewDeleteCategoryCommandHandler(uowFactory CategoryUoWFactory) DeleteCategoryCommandHandler {
	return DeleteCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the category removal command.
func (h *DeleteCategoryCommandHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	categoryRepo := uow.CategoryRepository()

	if _, err := categoryRepo.Get(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	products, err := categoryRepo.CountProducts(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}
	children, err := categoryRepo.CountChildren(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}
	if products > 0 || children > 0 {
		return errs.NewValueIsInvalidErrorWithCause("category", ErrCategoryIsInUse)
	}

	if err = categoryRepo.Delete(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
