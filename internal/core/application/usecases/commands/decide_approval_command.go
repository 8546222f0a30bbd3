package commands

import (
	"errors"

	"rugops/internal/core/domain/model/kernel"
	"rugops/internal/core/domain/model/order"
	"rugops/internal/pkg/errs"
	"rugops/internal/pkg/guard"
)

var ErrDecideApprovalCommandIsNotConstructed = errors.New(
	"DecideApprovalCommand must be created via NewDecideApprovalCommand constructor",
)

// DecideApprovalCommand represents the client's decision on a quoted order:
// approved or rejected.
type DecideApprovalCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.OrderID
	decision order.ApprovalStatus

	guard guard.ConstructorGuard
}

// NewDecideApprovalCommand creates a command to record a client decision.
// Only approved and rejected are accepted.
func NewDecideApprovalCommand(
	orderID kernel.OrderID,
	decision order.ApprovalStatus,
) (DecideApprovalCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DecideApprovalCommand{}, err
	}
	if !decision.IsDecision() {
		return DecideApprovalCommand{}, errs.NewValueIsInvalidError("approvalStatus")
	}

	return DecideApprovalCommand{
		orderID:  orderID,
		decision: decision,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DecideApprovalCommand) Validate() error {
	return c.guard.Validate(ErrDecideApprovalCommandIsNotConstructed)
}

// OrderID returns the order being decided.
func (c DecideApprovalCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Decision returns the client's decision.
func (c DecideApprovalCommand) Decision() order.ApprovalStatus {
	return c.decision
}
