package commands

import "context"

// MarkItemReadyCommandHandler moves an item into ready_for_delivery status,
// subject to the order's approval gate.
type MarkItemReadyCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkItemReadyCommandHandler creates a handler for delivery-readiness.
func NewMarkItemReadyCommandHandler(uowFactory OrderUoWFactory) MarkItemReadyCommandHandler {
	return MarkItemReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, marks the item ready and persists the result.
// Returns order.ErrApprovalRequired when the order still awaits a client
// decision.
func (h *MarkItemReadyCommandHandler) Handle(ctx context.Context, cmd MarkItemReadyCommand) error {
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

	if err = existing.MarkItemReady(cmd.ItemID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
