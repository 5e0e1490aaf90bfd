package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

var ErrDeleteCategoryCommandIsNotConstructed = errors.New(
	"DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor",
)

// ErrCategoryIsInUse rejects deleting a category that still has products or
// subcategories attached.
var ErrCategoryIsInUse = errors.New("category still has products or subcategories")

// DeleteCategoryCommand represents a request to remove an empty category.
type DeleteCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID kernel.UUID

	isConstructed bool
}

// NewDeleteCategoryCommand creates a category removal command.
func NewDeleteCategoryCommand(categoryID kernel.UUID) (DeleteCategoryCommand, error) {
	cmd := DeleteCategoryCommand{isConstructed: true}
	if err := categoryID.Validate(); err != nil {
		return DeleteCategoryCommand{}, err
	}
	cmd.categoryID = categoryID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCategoryCommand) Validate() error {
	if !c.isConstructed {
		return ErrDeleteCategoryCommandIsNotConstructed
	}
	return nil
}

// CategoryID returns the target category identifier.
func (c DeleteCategoryCommand) CategoryID() kernel.UUID { return c.categoryID }
