package commands

import (
	"errors"

	"rugops/internal/core/domain/model/kernel"
	"rugops/internal/core/domain/model/order"
	"rugops/internal/pkg/errs"
	"rugops/internal/pkg/guard"
)

var ErrUpdateItemDetailsCommandIsNotConstructed = errors.New(
	"UpdateItemDetailsCommand must be created via NewUpdateItemDetailsCommand constructor",
)

// UpdateItemDetailsCommand represents a measurement update for a single item:
// dimensions, material, condition or photo. Absent fields are left untouched.
type UpdateItemDetailsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	itemID  string
	patch   order.ItemPatch

	guard guard.ConstructorGuard
}

// NewUpdateItemDetailsCommand creates a command to record item measurements.
func NewUpdateItemDetailsCommand(
	orderID kernel.OrderID,
	itemID string,
	patch order.ItemPatch,
) (UpdateItemDetailsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateItemDetailsCommand{}, err
	}
	if itemID == "" {
		return UpdateItemDetailsCommand{}, errs.NewValueIsRequiredError("itemId")
	}

	return UpdateItemDetailsCommand{
		orderID: orderID,
		itemID:  itemID,
		patch:   patch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemDetailsCommandIsNotConstructed)
}

// OrderID returns the order holding the item.
func (c UpdateItemDetailsCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ItemID returns the item to update.
func (c UpdateItemDetailsCommand) ItemID() string {
	return c.itemID
}

// Patch returns the measurement fields to change.
func (c UpdateItemDetailsCommand) Patch() order.ItemPatch {
	return c.patch
}
