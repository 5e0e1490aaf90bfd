package commands

import (
	"errors"

	"storefront/internal/core/domain/model/category"
	"storefront/internal/core/domain/model/kernel"
)

var ErrUpdateCategoryCommandIsNotConstructed = errors.New(
	"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
)

// UpdateCategoryCommand represents a request to change a category's name,
// description, parent or status. Renaming re-derives the slug.
type UpdateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID  kernel.UUID
	name        string
	description string
	parentID    *kernel.UUID
	status      category.Status

	isConstructed bool
}

// NewUpdateCategoryCommand creates a category update command.
func NewUpdateCategoryCommand(
	categoryID kernel.UUID,
	name, description string,
	parentID *kernel.UUID,
	status category.Status,
) (UpdateCategoryCommand, error) {
	cmd := UpdateCategoryCommand{isConstructed: true}

	if err := errors.Join(
		categoryID.Validate(),
		status.Validate(),
	); err != nil {
		return UpdateCategoryCommand{}, err
	}
	if parentID != nil {
		if err := parentID.Validate(); err != nil {
			return UpdateCategoryCommand{}, err
		}
		pid := *parentID
		cmd.parentID = &pid
	}

	cmd.categoryID = categoryID
	cmd.name = name
	cmd.description = description
	cmd.status = status
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCategoryCommand) Validate() error {
	if !c.isConstructed {
		return ErrUpdateCategoryCommandIsNotConstructed
	}
	return nil
}

func (c UpdateCategoryCommand) CategoryID() kernel.UUID  { return c.categoryID }
func (c UpdateCategoryCommand) Name() string             { return c.name }
func (c UpdateCategoryCommand) Description() string      { return c.description }
func (c UpdateCategoryCommand) Status() category.Status  { return c.status }

func (c UpdateCategoryCommand) ParentID() *kernel.UUID {
	if c.parentID == nil {
		return nil
	}
	pid := *c.parentID
	return &pid
}
