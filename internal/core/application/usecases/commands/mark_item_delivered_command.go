package commands

import (
	"errors"

	"rugops/internal/core/domain/model/kernel"
	"rugops/internal/pkg/errs"
	"rugops/internal/pkg/guard"
)

var ErrMarkItemDeliveredCommandIsNotConstructed = errors.New(
	"MarkItemDeliveredCommand must be created via NewMarkItemDeliveredCommand constructor",
)

// MarkItemDeliveredCommand represents a confirmation that an item was handed
// back to the client.
type MarkItemDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	itemID  string

	guard guard.ConstructorGuard
}

// NewMarkItemDeliveredCommand creates a command to confirm delivery of an item.
func NewMarkItemDeliveredCommand(orderID kernel.OrderID, itemID string) (MarkItemDeliveredCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkItemDeliveredCommand{}, err
	}
	if itemID == "" {
		return MarkItemDeliveredCommand{}, errs.NewValueIsRequiredError("itemId")
	}

	return MarkItemDeliveredCommand{
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkItemDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkItemDeliveredCommandIsNotConstructed)
}

// OrderID returns the order holding the item.
func (c MarkItemDeliveredCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ItemID returns the delivered item.
func (c MarkItemDeliveredCommand) ItemID() string {
	return c.itemID
}
