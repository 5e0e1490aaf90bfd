package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

const minPasswordLength = 6

// RegisterUserCommand represents a request to create an account, either
// through public registration or by an administrator.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     string
	email    string
	password string
	role     user.Role

	isConstructed bool
}

// NewRegisterUserCommand creates an account registration command. The
// plaintext password is carried only as far as the handler, which hashes it
// before anything is persisted.
func NewRegisterUserCommand(userID kernel.UUID, name, email, password string, role user.Role) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{isConstructed: true}

	if err := errors.Join(
		userID.Validate(),
		role.Validate(),
		cmd.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	cmd.userID = userID
	cmd.name = name
	cmd.email = email
	cmd.role = role
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	if !c.isConstructed {
		return ErrRegisterUserCommandIsNotConstructed
	}
	return nil
}

func (c RegisterUserCommand) UserID() kernel.UUID { return c.userID }
func (c RegisterUserCommand) Name() string        { return c.name }
func (c RegisterUserCommand) Email() string       { return c.email }
func (c RegisterUserCommand) Password() string    { return c.password }
func (c RegisterUserCommand) Role() user.Role     { return c.role }

func (c *RegisterUserCommand) setPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	c.password = password
	return nil
}

// validatePassword bounds the plaintext length. The upper bound is the
// bcrypt input limit.
func validatePassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLength || len(password) > 72 {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, 72)
	}
	return nil
}
