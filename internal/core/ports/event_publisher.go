package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// OrderEventPublisher notifies external consumers about order lifecycle
// changes. Publishing happens after the owning transaction committed and is
// best-effort; failures are logged, never surfaced to the caller.
type OrderEventPublisher interface {
	// PublishOrderCreated announces a freshly created order.
	PublishOrderCreated(ctx context.Context, aggregate *order.Order) error

	// PublishOrderStatusChanged announces a status transition.
	PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order, previous order.Status) error
}
