package commands

import "context"

// MarkItemDeliveredCommandHandler moves a ready item into delivered status.
type MarkItemDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkItemDeliveredCommandHandler creates a handler for delivery confirmation.
func NewMarkItemDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkItemDeliveredCommandHandler {
	return MarkItemDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, marks the item delivered and persists the result.
func (h *MarkItemDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkItemDeliveredCommand) error {
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

	if err = existing.MarkItemDelivered(cmd.ItemID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
