package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand represents a request to add a catalog category.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID  kernel.UUID
	name        string
	description string
	parentID    *kernel.UUID

	isConstructed bool
}

// NewCreateCategoryCommand creates a category addition command. The slug is
// derived from the name by the domain constructor, so only id, name and the
// optional parent are validated here.
func NewCreateCategoryCommand(
	categoryID kernel.UUID,
	name, description string,
	parentID *kernel.UUID,
) (CreateCategoryCommand, error) {
	cmd := CreateCategoryCommand{isConstructed: true}

	if err := categoryID.Validate(); err != nil {
		return CreateCategoryCommand{}, err
	}
	if parentID != nil {
		if err := parentID.Validate(); err != nil {
			return CreateCategoryCommand{}, err
		}
		pid := *parentID
		cmd.parentID = &pid
	}

	cmd.categoryID = categoryID
	cmd.name = name
	cmd.description = description
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	if !c.isConstructed {
		return ErrCreateCategoryCommandIsNotConstructed
	}
	return nil
}

func (c CreateCategoryCommand) CategoryID() kernel.UUID { return c.categoryID }
func (c CreateCategoryCommand) Name() string            { return c.name }
func (c CreateCategoryCommand) Description() string     { return c.description }

func (c CreateCategoryCommand) ParentID() *kernel.UUID {
	if c.parentID == nil {
		return nil
	}
	pid := *c.parentID
	return &pid
}
