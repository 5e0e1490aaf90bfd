package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The happy path is:
//
//	pending ──> processing ──> shipped ──> delivered
//
// and cancelled is reachable from any non-terminal state. Transitions are
// not otherwise restricted: an explicit status update may move an order
// backward (e.g. delivered -> pending). That is a deliberate policy carried
// over from the admin workflow this system serves, not an oversight; the
// stock-restored flag on the aggregate keeps inventory correct regardless
// of how the status moves.
type Status string

const (
	// StatusPending is the initial status assigned at creation.
	// Pending orders still hold their reserved stock.
	StatusPending Status = "pending"

	// StatusProcessing marks an order being prepared for shipment.
	StatusProcessing Status = "processing"

	// StatusShipped marks an order handed to the carrier.
	StatusShipped Status = "shipped"

	// StatusDelivered is the terminal happy-path status.
	StatusDelivered Status = "delivered"

	// StatusCancelled marks an abandoned order. Entering this status
	// triggers stock restitution exactly once.
	StatusCancelled Status = "cancelled"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:    {},
		StatusProcessing: {},
		StatusShipped:    {},
		StatusDelivered:  {},
		StatusCancelled:  {},
	}
}

// StatusFromString parses a status, rejecting anything outside the enum.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks the status against the fixed enum.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsDeletable reports whether an order in this status may be deleted.
// Only orders that were never processed (pending) or already abandoned
// (cancelled) can be removed.
func (s Status) IsDeletable() bool {
	return s == StatusPending || s == StatusCancelled
}
