package commands

import "context"

// UpdateItemDetailsCommandHandler records measurements for one item. The
// aggregate recomputes the cleaning cost, advances the item out of pending
// once measurement is complete, and escalates the order to pending approval
// when every item has been priced.
type UpdateItemDetailsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateItemDetailsCommandHandler creates a handler for item measurement updates.
func NewUpdateItemDetailsCommandHandler(uowFactory OrderUoWFactory) UpdateItemDetailsCommandHandler {
	return UpdateItemDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the item patch and persists the result.
func (h *UpdateItemDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateItemDetailsCommand) error {
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

	if err = existing.UpdateItemDetails(cmd.ItemID(), cmd.Patch()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
