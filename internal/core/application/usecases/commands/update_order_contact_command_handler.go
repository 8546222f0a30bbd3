package commands

import "context"

// UpdateOrderContactCommandHandler applies contact detail changes to an order.
type UpdateOrderContactCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderContactCommandHandler creates a handler for contact updates.
func NewUpdateOrderContactCommandHandler(uowFactory OrderUoWFactory) UpdateOrderContactCommandHandler {
	return UpdateOrderContactCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the patch and persists the result.
func (h *UpdateOrderContactCommandHandler) Handle(ctx context.Context, cmd UpdateOrderContactCommand) error {
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

	if err = existing.UpdateContactDetails(cmd.Patch()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
