package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// CreateOrderResult reports what the handler persisted.
type CreateOrderResult struct {
	OrderID     kernel.UUID
	OrderNumber order.Number
}

// CreateOrderCommandHandler places new orders. Validation runs against a
// plain catalog read before any transaction starts; the transaction then
// covers number allocation, the order insert and all stock decrements, so
// either everything lands or nothing does.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductRepository
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// The catalog repository is the non-transactional read used for validation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductRepository,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		publisher:  publisher,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle validates every requested line against the catalog, then runs the
// creation transaction. The conditional stock decrement inside the
// transaction is the authority on availability; the upfront check only
// exists to fail fast with a precise error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	items, err := h.buildItems(ctx, cmd.Lines())
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	number, err := orderRepo.NextOrderNumber(ctx, time.Now().UTC())
	if err != nil {
		return CreateOrderResult{}, err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), number, cmd.Customer(), items,
		cmd.Tax(), cmd.Shipping(),
		cmd.PaymentMethod(), cmd.ShippingAddress(), cmd.BillingAddress(), cmd.Notes())
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}

	// Decrements run in ascending product id order so two overlapping
	// orders always lock product rows in the same sequence.
	productRepo := uow.ProductRepository()
	for _, item := range aggregate.ItemsByProductID() {
		if err = productRepo.DecrementStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			return CreateOrderResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	if h.publisher != nil {
		if err := h.publisher.PublishOrderCreated(ctx, aggregate); err != nil {
			h.logger.Warn("order created event not published",
				"order_number", aggregate.Number().String(), "error", err)
		}
	}

	return CreateOrderResult{OrderID: aggregate.ID(), OrderNumber: aggregate.Number()}, nil
}

func (h *CreateOrderCommandHandler) buildItems(ctx context.Context, lines []OrderLine) ([]order.Item, error) {
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		p, err := h.catalog.Get(ctx, line.ProductID())
		if err != nil {
			return nil, err
		}
		if !p.IsActive() {
			return nil, errs.NewObjectNotFoundError("product", line.ProductID())
		}
		if line.Quantity() > p.Stock() {
			return nil, errs.NewInsufficientStockError(
				p.ID().String(), p.Name(), line.Quantity(), p.Stock())
		}

		item, err := order.NewItem(p.ID(), p.Name(), p.SKU(), line.Quantity(), p.EffectivePrice())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
