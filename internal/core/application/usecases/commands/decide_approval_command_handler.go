package commands

import "context"

// DecideApprovalCommandHandler records the client's approval decision on an
// order that requires one.
type DecideApprovalCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDecideApprovalCommandHandler creates a handler for approval decisions.
func NewDecideApprovalCommandHandler(uowFactory OrderUoWFactory) DecideApprovalCommandHandler {
	return DecideApprovalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, records the decision and persists the result.
// Returns order.ErrApprovalNotRequested when the order never asked for
// approval.
func (h *DecideApprovalCommandHandler) Handle(ctx context.Context, cmd DecideApprovalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.DecideApproval(cmd.Decision()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
