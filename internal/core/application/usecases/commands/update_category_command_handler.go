package commands

import (
	"context"
)

// UpdateCategoryCommandHandler applies catalog category changes.
type UpdateCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

// NewUpdateCategoryCommandHandler creates a handler for category updates.
func NewUpdateCategoryCommandHandler(uowFactory CategoryUoWFactory) UpdateCategoryCommandHandler {
	return UpdateCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the category update command.
func (h *UpdateCategoryCommandHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) error {
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

	aggregate, err := categoryRepo.Get(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}

	if err = aggregate.Rename(cmd.Name()); err != nil {
		return err
	}
	aggregate.SetDescription(cmd.Description())
	if err = aggregate.SetParent(cmd.ParentID()); err != nil {
		return err
	}
	if err = aggregate.SetStatus(cmd.Status()); err != nil {
		return err
	}

	if err = categoryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
