package commands_test

import (
	"testing"

	"tavern/internal/core/application/usecases/commands"
	"tavern/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddLineItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddLineItemCommand(1, 3, 2)

	stored := restoredOrder(1, 10)
	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(1)).Return(stored, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", mock.Anything, int64(3)).Return(restoredMenuItem(3), nil).Once(),
		orderRepo.On("AddLineItem", mock.Anything, mock.AnythingOfType("*order.LineItem")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineItemCommandHandler(factory)
	item, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, int64(1), item.OrderID())
	require.Equal(t, 2, item.Quantity())
	require.Equal(t, "Pilsner", item.ItemName())
	orderRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddLineItemCommandHandler_Handle_PaidOrderRejected(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddLineItemCommand(1, 3, 2)

	paid := restoredOrder(1, 10)
	require.NoError(t, paid.MarkPaid())

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(1)).Return(paid, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", mock.Anything, int64(3)).Return(restoredMenuItem(3), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderAlreadyPaid)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
