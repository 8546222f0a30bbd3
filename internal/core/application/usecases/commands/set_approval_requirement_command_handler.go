package commands

import "context"

// SetApprovalRequirementCommandHandler toggles the approval requirement on
// an order. Switching it on resets the approval status to pending; switching
// it off clears any prior decision.
type SetApprovalRequirementCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetApprovalRequirementCommandHandler creates a handler for the approval toggle.
func NewSetApprovalRequirementCommandHandler(uowFactory OrderUoWFactory) SetApprovalRequirementCommandHandler {
	return SetApprovalRequirementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the toggle and persists the result.
func (h *SetApprovalRequirementCommandHandler) Handle(ctx context.Context, cmd SetApprovalRequirementCommand) error {
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

	existing.SetRequiresApproval(cmd.Required())

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
