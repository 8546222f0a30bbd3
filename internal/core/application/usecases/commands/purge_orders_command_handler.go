package commands

import "context"

// PurgeOrdersCommandHandler deletes every order and item in one transaction.
type PurgeOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeOrdersCommandHandler creates a handler for the purge operation.
func NewPurgeOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeOrdersCommandHandler {
	return PurgeOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle wipes the order store.
func (h *PurgeOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeOrdersCommand) error {
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

	if err := uow.OrderRepository().DeleteAll(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
