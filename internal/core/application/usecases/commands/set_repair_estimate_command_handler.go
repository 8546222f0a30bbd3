package commands

import "context"

// SetRepairEstimateCommandHandler records a repair quote on one item and
// moves it to repair_estimated status.
type SetRepairEstimateCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetRepairEstimateCommandHandler creates a handler for repair quotes.
func NewSetRepairEstimateCommandHandler(uowFactory OrderUoWFactory) SetRepairEstimateCommandHandler {
	return SetRepairEstimateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, records the estimate and persists the result.
func (h *SetRepairEstimateCommandHandler) Handle(ctx context.Context, cmd SetRepairEstimateCommand) error {
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

	if err = existing.SetRepairEstimate(cmd.ItemID(), cmd.Description(), cmd.Cost()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
