package commands

import "context"

// FlagItemRepairCommandHandler moves an item into repair_needed status.
type FlagItemRepairCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFlagItemRepairCommandHandler creates a handler for repair flagging.
func NewFlagItemRepairCommandHandler(uowFactory OrderUoWFactory) FlagItemRepairCommandHandler {
	return FlagItemRepairCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, flags the item and persists the result.
func (h *FlagItemRepairCommandHandler) Handle(ctx context.Context, cmd FlagItemRepairCommand) error {
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

	if err = existing.FlagItemForRepair(cmd.ItemID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
