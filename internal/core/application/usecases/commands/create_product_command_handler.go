package commands

import (
	"context"

	"storefront/internal/core/domain/model/product"
)

// CreateProductCommandHandler adds products to the catalog.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateProductCommandHandler creates a handler for catalog additions.
func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

// Handle processes the catalog addition command.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.SKU(), cmd.Price(), cmd.Stock())
	if err != nil {
		return err
	}
	aggregate.SetDescription(cmd.Description())
	if err = aggregate.SetCategory(cmd.CategoryID()); err != nil {
		return err
	}
	aggregate.SetPricing(cmd.Price(), cmd.SalePrice())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
