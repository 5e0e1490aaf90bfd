package commands

import (
	"context"

	"storefront/internal/core/domain/model/category"
)

// CreateCategoryCommandHandler adds categories to the catalog.
type CreateCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category additions.
func NewCreateCategoryCommandHandler(uowFactory CategoryUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the category addition command. A duplicate slug surfaces
// from the repository as a validation error.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := category.NewCategory(cmd.CategoryID(), cmd.Name())
	if err != nil {
		return err
	}
	aggregate.SetDescription(cmd.Description())
	if err = aggregate.SetParent(cmd.ParentID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CategoryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
