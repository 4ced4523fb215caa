package commands

import (
	"context"
)

// TopUpDepositCommandHandler adds funds to member balances. The aggregate
// rejects top-ups for regular customers.
type TopUpDepositCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewTopUpDepositCommandHandler creates a handler for deposit top-ups.
func NewTopUpDepositCommandHandler(uowFactory CustomerUoWFactory) TopUpDepositCommandHandler {
	return TopUpDepositCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the top-up command.
func (h *TopUpDepositCommandHandler) Handle(ctx context.Context, cmd TopUpDepositCommand) error {
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

	customerRepo := uow.CustomerRepository()
	aggregate, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = aggregate.TopUp(cmd.Amount()); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
