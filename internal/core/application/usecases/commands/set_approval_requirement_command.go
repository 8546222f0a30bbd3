package commands

import (
	"errors"

	"rugops/internal/core/domain/model/kernel"
	"rugops/internal/pkg/guard"
)

var ErrSetApprovalRequirementCommandIsNotConstructed = errors.New(
	"SetApprovalRequirementCommand must be created via NewSetApprovalRequirementCommand constructor",
)

// SetApprovalRequirementCommand represents the staff toggle that puts an
// order under the client approval workflow or takes it back out.
type SetApprovalRequirementCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.OrderID
	required bool

	guard guard.ConstructorGuard
}

// NewSetApprovalRequirementCommand creates a command to toggle the approval
// requirement.
func NewSetApprovalRequirementCommand(
	orderID kernel.OrderID,
	required bool,
) (SetApprovalRequirementCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SetApprovalRequirementCommand{}, err
	}

	return SetApprovalRequirementCommand{
		orderID:  orderID,
		required: required,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetApprovalRequirementCommand) Validate() error {
	return c.guard.Validate(ErrSetApprovalRequirementCommandIsNotConstructed)
}

// OrderID returns the order to toggle.
func (c SetApprovalRequirementCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Required reports whether client approval is being switched on or off.
func (c SetApprovalRequirementCommand) Required() bool {
	return c.required
}
