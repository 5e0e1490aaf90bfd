package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// UpdateOrderStatusCommandHandler moves orders through their lifecycle.
// The order row is read under a row lock, so overlapping status changes and
// deletes for the same order serialize instead of racing. A transition into
// cancelled restores the reserved stock exactly once, tracked by the
// order's stock-restored flag.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status changes.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "update_order_status_handler"),
	}
}

// Handle processes the status change command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if cmd.Status() == order.StatusCancelled && aggregate.NeedsRestitution() {
		if err = h.restoreStock(ctx, uow.ProductRepository(), aggregate); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil && previous != aggregate.Status() {
		if err := h.publisher.PublishOrderStatusChanged(ctx, aggregate, previous); err != nil {
			h.logger.Warn("status changed event not published",
				"order_number", aggregate.Number().String(), "error", err)
		}
	}

	return nil
}

func (h *UpdateOrderStatusCommandHandler) restoreStock(
	ctx context.Context,
	productRepo ports.ProductRepository,
	aggregate *order.Order,
) error {
	for _, item := range aggregate.ItemsByProductID() {
		if err := productRepo.RestoreStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			return err
		}
	}
	aggregate.MarkStockRestored()
	return nil
}
