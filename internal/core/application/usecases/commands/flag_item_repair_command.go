package commands

import (
	"errors"

	"rugops/internal/core/domain/model/kernel"
	"rugops/internal/pkg/errs"
	"rugops/internal/pkg/guard"
)

var ErrFlagItemRepairCommandIsNotConstructed = errors.New(
	"FlagItemRepairCommand must be created via NewFlagItemRepairCommand constructor",
)

// FlagItemRepairCommand represents a request to flag an item as needing
// repair work before a quote exists.
type FlagItemRepairCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	itemID  string

	guard guard.ConstructorGuard
}

// NewFlagItemRepairCommand creates a command to flag an item for repair.
func NewFlagItemRepairCommand(orderID kernel.OrderID, itemID string) (FlagItemRepairCommand, error) {
	if err := orderID.Validate(); err != nil {
		return FlagItemRepairCommand{}, err
	}
	if itemID == "" {
		return FlagItemRepairCommand{}, errs.NewValueIsRequiredError("itemId")
	}

	return FlagItemRepairCommand{
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FlagItemRepairCommand) Validate() error {
	return c.guard.Validate(ErrFlagItemRepairCommandIsNotConstructed)
}

// OrderID returns the order holding the item.
func (c FlagItemRepairCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ItemID returns the item to flag.
func (c FlagItemRepairCommand) ItemID() string {
	return c.itemID
}
