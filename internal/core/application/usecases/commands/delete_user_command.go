package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand represents a request to remove an account. Orders the
// account placed are kept; their customer link is severed by the schema.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	isConstructed bool
}

// NewDeleteUserCommand creates an account removal command.
func NewDeleteUserCommand(userID kernel.UUID) (DeleteUserCommand, error) {
	cmd := DeleteUserCommand{isConstructed: true}
	if err := userID.Validate(); err != nil {
		return DeleteUserCommand{}, err
	}
	cmd.userID = userID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	if !c.isConstructed {
		return ErrDeleteUserCommandIsNotConstructed
	}
	return nil
}

// UserID returns the target account identifier.
func (c DeleteUserCommand) UserID() kernel.UUID { return c.userID }
