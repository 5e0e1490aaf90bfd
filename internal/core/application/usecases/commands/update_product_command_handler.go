package commands

import (
	"context"
)

// UpdateProductCommandHandler applies catalog edits. The product is loaded
// and rewritten inside one transaction so concurrent order placement never
// observes a half-applied edit.
type UpdateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for catalog edits.
func NewUpdateProductCommandHandler(uowFactory CatalogUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory}
}

// Handle processes the catalog edit command.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	aggregate.SetDescription(cmd.Description())
	if err = aggregate.SetCategory(cmd.CategoryID()); err != nil {
		return err
	}
	aggregate.SetPricing(cmd.Price(), cmd.SalePrice())
	if err = aggregate.SetStock(cmd.Stock()); err != nil {
		return err
	}
	if err = aggregate.SetStatus(cmd.Status()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
