package commands

import (
	"context"

	"storefront/internal/pkg/security"
)

// UpdateUserCommandHandler applies account edits.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserCommandHandler creates a handler for account edits.
func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{uowFactory: uowFactory}
}

// Handle processes the account edit command.
func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) error {
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

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = aggregate.Rename(cmd.Name()); err != nil {
		return err
	}
	if password := cmd.Password(); password != nil {
		hash, err := security.HashPassword(*password)
		if err != nil {
			return err
		}
		if err = aggregate.ChangePasswordHash(hash); err != nil {
			return err
		}
	}
	aggregate.SetActive(cmd.Active())

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
