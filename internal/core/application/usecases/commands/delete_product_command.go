package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand represents a request to remove a product from the
// catalog. Item rows of past orders keep their denormalized copy of the
// product data, so order history survives the removal.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	isConstructed bool
}

// NewDeleteProductCommand creates a catalog removal command.
func NewDeleteProductCommand(productID kernel.UUID) (DeleteProductCommand, error) {
	cmd := DeleteProductCommand{isConstructed: true}
	if err := productID.Validate(); err != nil {
		return DeleteProductCommand{}, err
	}
	cmd.productID = productID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	if !c.isConstructed {
		return ErrDeleteProductCommandIsNotConstructed
	}
	return nil
}

// ProductID returns the target product identifier.
func (c DeleteProductCommand) ProductID() kernel.UUID { return c.productID }
