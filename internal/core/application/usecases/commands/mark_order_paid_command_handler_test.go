package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewMarkOrderPaidCommand_AllowsEmptyProof(t *testing.T) {
	cmd, err := commands.NewMarkOrderPaidCommand(kernel.NewUUID(), "")
	require.NoError(t, err)
	assert.Empty(t, cmd.ProofKey())
}

func TestMarkOrderPaidCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := activeTestOrder(t, order.Ready, false)
	cmd, err := commands.NewMarkOrderPaidCommand(testOrder.ID(), "proofs/transfer.jpg")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkOrderPaidCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, testOrder.IsPaid())
	assert.Equal(t, "proofs/transfer.jpg", testOrder.PaymentProofKey())
	orderRepo.AssertExpectations(t)
}

func TestMarkOrderPaidCommandHandler_Handle_AlreadyPaid(t *testing.T) {
	ctx := t.Context()

	testOrder := activeTestOrder(t, order.Ready, true)
	cmd, err := commands.NewMarkOrderPaidCommand(testOrder.ID(), "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkOrderPaidCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
