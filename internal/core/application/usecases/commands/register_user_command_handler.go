package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/security"
)

var ErrEmailIsTaken = errors.New("email is already registered")

// RegisterUserCommandHandler creates accounts. The email uniqueness check
// and the insert share one transaction; the unique index on email backs the
// check up under concurrency.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory}
}

// Handle processes the registration command.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := security.HashPassword(cmd.Password())
	if err != nil {
		return err
	}

	aggregate, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), hash, cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if _, err = userRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return errs.NewValueIsInvalidErrorWithCause("email", ErrEmailIsTaken)
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = userRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
