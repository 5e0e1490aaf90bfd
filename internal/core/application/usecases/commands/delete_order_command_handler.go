package commands

import (
	"context"
	"errors"

	"storefront/internal/pkg/errs"
)

var ErrOrderIsNotDeletable = errors.New("only pending or cancelled orders can be deleted")

// DeleteOrderCommandHandler removes orders. Only pending and cancelled
// orders qualify; stock the order still holds is returned in the same
// transaction that deletes the rows. The row lock taken by GetForUpdate
// keeps a concurrent cancellation from restoring the same stock twice.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the deletion command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.Status().IsDeletable() {
		return errs.NewValueIsInvalidErrorWithCause("status", ErrOrderIsNotDeletable)
	}

	if aggregate.NeedsRestitution() {
		productRepo := uow.ProductRepository()
		for _, item := range aggregate.ItemsByProductID() {
			if err = productRepo.RestoreStock(ctx, item.ProductID(), item.Quantity()); err != nil {
				return err
			}
		}
	}

	if err = orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
