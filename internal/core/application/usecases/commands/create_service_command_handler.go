package commands

import (
	"context"

	"laundry/internal/core/domain/model/catalog"
)

// CreateServiceCommandHandler maintains the service catalog.
type CreateServiceCommandHandler struct {
	uowFactory ServiceUoWFactory
}

// NewCreateServiceCommandHandler creates a handler for catalog additions.
func NewCreateServiceCommandHandler(uowFactory ServiceUoWFactory) CreateServiceCommandHandler {
	return CreateServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog addition command.
func (h *CreateServiceCommandHandler) Handle(ctx context.Context, cmd CreateServiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	service, err := catalog.NewService(
		cmd.ServiceID(),
		cmd.Name(),
		cmd.Category(),
		cmd.Price(),
		cmd.MemberPrice(),
		cmd.WeightBased(),
		cmd.MinWeight(),
		cmd.MaxWeight(),
		cmd.DurationHours(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ServiceRepository().Add(ctx, service); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
