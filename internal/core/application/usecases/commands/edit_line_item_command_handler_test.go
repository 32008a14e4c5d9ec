package commands_test

import (
	"testing"

	"tavern/internal/core/application/usecases/commands"
	"tavern/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEditLineItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewEditLineItemCommand(1, 10, 5)

	stored := restoredOrder(1, 10)
	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(1)).Return(stored, nil).Once(),
		orderRepo.On("UpdateLineItem", mock.Anything, mock.AnythingOfType("*order.LineItem")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEditLineItemCommandHandler(factory)
	item, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, int64(10), item.ID())
	require.Equal(t, 5, item.Quantity())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestEditLineItemCommandHandler_Handle_PositionNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewEditLineItemCommand(1, 42, 5)

	stored := restoredOrder(1, 10)
	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(1)).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEditLineItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
