package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand represents a request to rename an account, change its
// password, or toggle whether it may sign in. Nil password means keep the
// current one.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     string
	password *string
	active   bool

	isConstructed bool
}

// NewUpdateUserCommand creates an account update command.
func NewUpdateUserCommand(userID kernel.UUID, name string, password *string, active bool) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{isConstructed: true}

	if err := userID.Validate(); err != nil {
		return UpdateUserCommand{}, err
	}
	if password != nil {
		if err := validatePassword(*password); err != nil {
			return UpdateUserCommand{}, err
		}
		p := *password
		cmd.password = &p
	}

	cmd.userID = userID
	cmd.name = name
	cmd.active = active
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	if !c.isConstructed {
		return ErrUpdateUserCommandIsNotConstructed
	}
	return nil
}

func (c UpdateUserCommand) UserID() kernel.UUID { return c.userID }
func (c UpdateUserCommand) Name() string        { return c.name }
func (c UpdateUserCommand) Active() bool        { return c.active }

func (c UpdateUserCommand) Password() *string {
	if c.password == nil {
		return nil
	}
	p := *c.password
	return &p
}
