package commands

import (
	"errors"

	"rugops/internal/core/domain/model/kernel"
	"rugops/internal/pkg/errs"
	"rugops/internal/pkg/guard"
)

var ErrMarkItemReadyCommandIsNotConstructed = errors.New(
	"MarkItemReadyCommand must be created via NewMarkItemReadyCommand constructor",
)

// MarkItemReadyCommand represents a request to move a finished item into the
// delivery queue. The aggregate refuses it while client approval is pending.
type MarkItemReadyCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	itemID  string

	guard guard.ConstructorGuard
}

// NewMarkItemReadyCommand creates a command to mark an item ready for delivery.
func NewMarkItemReadyCommand(orderID kernel.OrderID, itemID string) (MarkItemReadyCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkItemReadyCommand{}, err
	}
	if itemID == "" {
		return MarkItemReadyCommand{}, errs.NewValueIsRequiredError("itemId")
	}

	return MarkItemReadyCommand{
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkItemReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkItemReadyCommandIsNotConstructed)
}

// OrderID returns the order holding the item.
func (c MarkItemReadyCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ItemID returns the item to mark ready.
func (c MarkItemReadyCommand) ItemID() string {
	return c.itemID
}
