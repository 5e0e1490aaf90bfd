package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to remove an order entirely.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	isConstructed bool
}

// NewDeleteOrderCommand creates a deletion command.
func NewDeleteOrderCommand(orderID kernel.UUID) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{isConstructed: true}
	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}
	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrDeleteOrderCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the target order identifier.
func (c DeleteOrderCommand) OrderID() kernel.UUID { return c.orderID }
