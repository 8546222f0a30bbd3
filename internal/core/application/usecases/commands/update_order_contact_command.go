package commands

import (
	"errors"

	"rugops/internal/core/domain/model/kernel"
	"rugops/internal/core/domain/model/order"
	"rugops/internal/pkg/guard"
)

var ErrUpdateOrderContactCommandIsNotConstructed = errors.New(
	"UpdateOrderContactCommand must be created via NewUpdateOrderContactCommand constructor",
)

// UpdateOrderContactCommand represents a partial update to an order's client
// and contact details. Absent fields are left untouched.
type UpdateOrderContactCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	patch   order.ContactPatch

	guard guard.ConstructorGuard
}

// NewUpdateOrderContactCommand creates a command to update contact details.
func NewUpdateOrderContactCommand(
	orderID kernel.OrderID,
	patch order.ContactPatch,
) (UpdateOrderContactCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderContactCommand{}, err
	}

	return UpdateOrderContactCommand{
		orderID: orderID,
		patch:   patch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderContactCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderContactCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderContactCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Patch returns the contact fields to change.
func (c UpdateOrderContactCommand) Patch() order.ContactPatch {
	return c.patch
}
