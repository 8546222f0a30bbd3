package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"rugops/internal/core/domain/model/kernel"
	"rugops/internal/pkg/errs"
	"rugops/internal/pkg/guard"
)

var ErrSetRepairEstimateCommandIsNotConstructed = errors.New(
	"SetRepairEstimateCommand must be created via NewSetRepairEstimateCommand constructor",
)

// SetRepairEstimateCommand represents a repair quote for a single item: a
// description of the work and its cost.
type SetRepairEstimateCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.OrderID
	itemID      string
	description string
	cost        decimal.Decimal

	guard guard.ConstructorGuard
}

// NewSetRepairEstimateCommand creates a command to quote a repair.
// The description is mandatory and the cost must not be negative.
func NewSetRepairEstimateCommand(
	orderID kernel.OrderID,
	itemID string,
	description string,
	cost decimal.Decimal,
) (SetRepairEstimateCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SetRepairEstimateCommand{}, err
	}
	if itemID == "" {
		return SetRepairEstimateCommand{}, errs.NewValueIsRequiredError("itemId")
	}
	if description == "" {
		return SetRepairEstimateCommand{}, errs.NewValueIsRequiredError("repairDescription")
	}
	if cost.IsNegative() {
		return SetRepairEstimateCommand{}, errs.NewValueIsInvalidError("repairCost")
	}

	return SetRepairEstimateCommand{
		orderID:     orderID,
		itemID:      itemID,
		description: description,
		cost:        cost,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRepairEstimateCommand) Validate() error {
	return c.guard.Validate(ErrSetRepairEstimateCommandIsNotConstructed)
}

// OrderID returns the order holding the item.
func (c SetRepairEstimateCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ItemID returns the item being quoted.
func (c SetRepairEstimateCommand) ItemID() string {
	return c.itemID
}

// Description returns the description of the repair work.
func (c SetRepairEstimateCommand) Description() string {
	return c.description
}

// Cost returns the quoted repair cost.
func (c SetRepairEstimateCommand) Cost() decimal.Decimal {
	return c.cost
}
