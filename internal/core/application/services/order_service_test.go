package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tavern/internal/core/application/services"
	"tavern/internal/core/application/usecases/commands"
	"tavern/internal/core/application/usecases/queries"
	"tavern/internal/core/domain/model/menuitem"
	"tavern/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUpdater struct{ mock.Mock }

func (m *MockOrderUpdater) Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderDeleter struct{ mock.Mock }

func (m *MockOrderDeleter) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockOrderPayer struct{ mock.Mock }

func (m *MockOrderPayer) Handle(ctx context.Context, cmd commands.PayOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockLineItemAdder struct{ mock.Mock }

func (m *MockLineItemAdder) Handle(ctx context.Context, cmd commands.AddLineItemCommand) (*order.LineItem, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.LineItem), args.Error(1)
}

type MockLineItemEditor struct{ mock.Mock }

func (m *MockLineItemEditor) Handle(ctx context.Context, cmd commands.EditLineItemCommand) (*order.LineItem, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.LineItem), args.Error(1)
}

type MockLineItemRemover struct{ mock.Mock }

func (m *MockLineItemRemover) Handle(ctx context.Context, cmd commands.RemoveLineItemCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockUnpaidOrdersReader struct{ mock.Mock }

func (m *MockUnpaidOrdersReader) Handle(ctx context.Context, q queries.GetUnpaidOrdersQuery) ([]*order.Order, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Publish(ctx context.Context, event services.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func unpaidOrder(t *testing.T, orderID, itemID int64) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(orderID, 7, "Ada", "Lovelace", "Table 4",
		time.Date(2026, time.March, 14, 19, 30, 0, 0, time.UTC), false, 9.0, 1.89)
	require.NoError(t, err)
	item, err := order.RestoreLineItem(itemID, orderID, 3, "Pilsner", menuitem.Beverage,
		4.5, 21, 0.945, 2, 9.0, 1.89)
	require.NoError(t, err)
	require.NoError(t, o.AttachRestoredLineItem(item))
	return o
}

func TestOrderService_Load(t *testing.T) {
	ctx := t.Context()
	reader := new(MockUnpaidOrdersReader)
	reader.On("Handle", ctx, mock.Anything).
		Return([]*order.Order{unpaidOrder(t, 2, 20), unpaidOrder(t, 1, 10)}, nil).Once()

	svc := services.NewOrderService(services.OrderServiceParams{UnpaidReader: reader})
	require.NoError(t, svc.Load(ctx))

	orders := svc.UnpaidOrders()
	require.Len(t, orders, 2)
	assert.Equal(t, int64(1), orders[0].ID())
	assert.Equal(t, int64(2), orders[1].ID())
	reader.AssertExpectations(t)
}

func TestOrderService_Load_Error(t *testing.T) {
	ctx := t.Context()
	reader := new(MockUnpaidOrdersReader)
	reader.On("Handle", ctx, mock.Anything).
		Return([]*order.Order{unpaidOrder(t, 1, 10)}, nil).Once()
	svc := services.NewOrderService(services.OrderServiceParams{UnpaidReader: reader})
	require.NoError(t, svc.Load(ctx))

	reader.On("Handle", ctx, mock.Anything).Return(nil, errors.New("db down")).Once()
	require.Error(t, svc.Load(ctx))

	// A failed reload keeps the previous view.
	assert.Len(t, svc.UnpaidOrders(), 1)
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(7, "Table 4", nil)

	created := unpaidOrder(t, 1, 10)
	creator := new(MockOrderCreator)
	creator.On("Handle", ctx, cmd).Return(created, nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.MatchedBy(func(e services.OrderEvent) bool {
		return e.Kind == services.OrderCreated && e.OrderID == 1 && e.ID != ""
	})).Return(nil).Once()

	svc := services.NewOrderService(services.OrderServiceParams{
		Creator:  creator,
		Notifier: notifier,
	})

	got, err := svc.CreateOrder(ctx, cmd)
	require.NoError(t, err)
	assert.Same(t, created, got)
	assert.Same(t, created, svc.UnpaidOrder(1))
	creator.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestOrderService_CreateOrder_FailureLeavesCache(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(7, "Table 4", nil)

	creator := new(MockOrderCreator)
	creator.On("Handle", ctx, cmd).Return(nil, errors.New("constraint violation")).Once()

	svc := services.NewOrderService(services.OrderServiceParams{Creator: creator})
	_, err := svc.CreateOrder(ctx, cmd)
	require.Error(t, err)
	assert.Empty(t, svc.UnpaidOrders())
}

func TestOrderService_PayOrder(t *testing.T) {
	ctx := t.Context()
	reader := new(MockUnpaidOrdersReader)
	reader.On("Handle", ctx, mock.Anything).
		Return([]*order.Order{unpaidOrder(t, 1, 10)}, nil).Once()
	payer := new(MockOrderPayer)

	svc := services.NewOrderService(services.OrderServiceParams{
		Payer:        payer,
		UnpaidReader: reader,
	})
	require.NoError(t, svc.Load(ctx))

	cmd, _ := commands.NewPayOrderCommand(1)
	payer.On("Handle", ctx, cmd).Return(nil).Once()

	require.NoError(t, svc.PayOrder(ctx, cmd))
	assert.Nil(t, svc.UnpaidOrder(1))
	payer.AssertExpectations(t)
}

func TestOrderService_PayOrder_FailureKeepsCache(t *testing.T) {
	ctx := t.Context()
	reader := new(MockUnpaidOrdersReader)
	reader.On("Handle", ctx, mock.Anything).
		Return([]*order.Order{unpaidOrder(t, 1, 10)}, nil).Once()
	payer := new(MockOrderPayer)

	svc := services.NewOrderService(services.OrderServiceParams{
		Payer:        payer,
		UnpaidReader: reader,
	})
	require.NoError(t, svc.Load(ctx))

	cmd, _ := commands.NewPayOrderCommand(1)
	payer.On("Handle", ctx, cmd).Return(errors.New("db down")).Once()

	require.Error(t, svc.PayOrder(ctx, cmd))
	assert.NotNil(t, svc.UnpaidOrder(1))
}

func TestOrderService_DeleteOrder(t *testing.T) {
	ctx := t.Context()
	reader := new(MockUnpaidOrdersReader)
	reader.On("Handle", ctx, mock.Anything).
		Return([]*order.Order{unpaidOrder(t, 1, 10)}, nil).Once()
	deleter := new(MockOrderDeleter)

	svc := services.NewOrderService(services.OrderServiceParams{
		Deleter:      deleter,
		UnpaidReader: reader,
	})
	require.NoError(t, svc.Load(ctx))

	cmd, _ := commands.NewDeleteOrderCommand(1)
	deleter.On("Handle", ctx, cmd).Return(nil).Once()

	require.NoError(t, svc.DeleteOrder(ctx, cmd))
	assert.Empty(t, svc.UnpaidOrders())
}

func TestOrderService_UpdateOrder_ReloadsWorkingSet(t *testing.T) {
	ctx := t.Context()
	stale := unpaidOrder(t, 1, 10)
	fresh := unpaidOrder(t, 1, 10)

	reader := new(MockUnpaidOrdersReader)
	reader.On("Handle", ctx, mock.Anything).
		Return([]*order.Order{stale}, nil).Once()

	updater := new(MockOrderUpdater)
	cmd, _ := commands.NewUpdateOrderCommand(1, 7, "Table 5", []commands.LineItemSpec{
		{LineItemID: 10, Quantity: 2},
	})
	updater.On("Handle", ctx, cmd).Return(fresh, nil).Once()
	reader.On("Handle", ctx, mock.Anything).
		Return([]*order.Order{fresh}, nil).Once()

	svc := services.NewOrderService(services.OrderServiceParams{
		Updater:      updater,
		UnpaidReader: reader,
	})
	require.NoError(t, svc.Load(ctx))
	require.Same(t, stale, svc.UnpaidOrder(1))

	got, err := svc.UpdateOrder(ctx, cmd)
	require.NoError(t, err)
	assert.Same(t, fresh, got)
	assert.Same(t, fresh, svc.UnpaidOrder(1))
	updater.AssertExpectations(t)
	reader.AssertExpectations(t)
}

func TestOrderService_AddLineItem_PatchesCachedOrder(t *testing.T) {
	ctx := t.Context()
	reader := new(MockUnpaidOrdersReader)
	reader.On("Handle", ctx, mock.Anything).
		Return([]*order.Order{unpaidOrder(t, 1, 10)}, nil).Once()
	adder := new(MockLineItemAdder)

	svc := services.NewOrderService(services.OrderServiceParams{
		ItemAdder:    adder,
		UnpaidReader: reader,
	})
	require.NoError(t, svc.Load(ctx))

	newItem, err := order.RestoreLineItem(11, 1, 4, "Goulash", menuitem.Main,
		12.0, 10, 1.2, 1, 12.0, 1.2)
	require.NoError(t, err)

	cmd, _ := commands.NewAddLineItemCommand(1, 4, 1)
	adder.On("Handle", ctx, cmd).Return(newItem, nil).Once()

	got, err := svc.AddLineItem(ctx, cmd)
	require.NoError(t, err)
	assert.Same(t, newItem, got)

	cached := svc.UnpaidOrder(1)
	require.Len(t, cached.LineItems(), 2)
	assert.InDelta(t, 21.0, cached.TotalPrice(), 1e-9)
	assert.InDelta(t, 3.09, cached.TotalVat(), 1e-9)
}

func TestOrderService_EditLineItem_PatchesCachedOrder(t *testing.T) {
	ctx := t.Context()
	reader := new(MockUnpaidOrdersReader)
	reader.On("Handle", ctx, mock.Anything).
		Return([]*order.Order{unpaidOrder(t, 1, 10)}, nil).Once()
	editor := new(MockLineItemEditor)

	svc := services.NewOrderService(services.OrderServiceParams{
		ItemEditor:   editor,
		UnpaidReader: reader,
	})
	require.NoError(t, svc.Load(ctx))

	edited, err := order.RestoreLineItem(10, 1, 3, "Pilsner", menuitem.Beverage,
		4.5, 21, 0.945, 5, 22.5, 4.725)
	require.NoError(t, err)

	cmd, _ := commands.NewEditLineItemCommand(1, 10, 5)
	editor.On("Handle", ctx, cmd).Return(edited, nil).Once()

	_, err = svc.EditLineItem(ctx, cmd)
	require.NoError(t, err)

	cached := svc.UnpaidOrder(1)
	require.Equal(t, 5, cached.LineItems()[0].Quantity())
	assert.InDelta(t, 22.5, cached.TotalPrice(), 1e-9)
	assert.InDelta(t, 4.725, cached.TotalVat(), 1e-9)
}

func TestOrderService_RemoveLineItem_PatchesCachedOrder(t *testing.T) {
	ctx := t.Context()
	reader := new(MockUnpaidOrdersReader)
	reader.On("Handle", ctx, mock.Anything).
		Return([]*order.Order{unpaidOrder(t, 1, 10)}, nil).Once()
	remover := new(MockLineItemRemover)

	svc := services.NewOrderService(services.OrderServiceParams{
		ItemRemover:  remover,
		UnpaidReader: reader,
	})
	require.NoError(t, svc.Load(ctx))

	cmd, _ := commands.NewRemoveLineItemCommand(1, 10)
	remover.On("Handle", ctx, cmd).Return(nil).Once()

	require.NoError(t, svc.RemoveLineItem(ctx, cmd))

	cached := svc.UnpaidOrder(1)
	assert.Empty(t, cached.LineItems())
	assert.Zero(t, cached.TotalPrice())
	assert.Zero(t, cached.TotalVat())
}

func TestOrderService_AddLineItem_UnattachableItemKeepsCachedView(t *testing.T) {
	ctx := t.Context()
	reader := new(MockUnpaidOrdersReader)
	reader.On("Handle", ctx, mock.Anything).
		Return([]*order.Order{unpaidOrder(t, 1, 10)}, nil).Once()
	adder := new(MockLineItemAdder)

	svc := services.NewOrderService(services.OrderServiceParams{
		ItemAdder:    adder,
		UnpaidReader: reader,
	})
	require.NoError(t, svc.Load(ctx))

	// An item stamped with a different order id cannot be attached; the add
	// still succeeds and the cached view stays as it was.
	stray, err := order.RestoreLineItem(11, 2, 4, "Goulash", menuitem.Main,
		12.0, 10, 1.2, 1, 12.0, 1.2)
	require.NoError(t, err)

	cmd, _ := commands.NewAddLineItemCommand(1, 4, 1)
	adder.On("Handle", ctx, cmd).Return(stray, nil).Once()

	got, err := svc.AddLineItem(ctx, cmd)
	require.NoError(t, err)
	assert.Same(t, stray, got)

	cached := svc.UnpaidOrder(1)
	require.Len(t, cached.LineItems(), 1)
	assert.InDelta(t, 9.0, cached.TotalPrice(), 1e-9)
}

func TestOrderService_NotifierFailureDoesNotFailOperation(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(7, "Table 4", nil)

	creator := new(MockOrderCreator)
	creator.On("Handle", ctx, cmd).Return(unpaidOrder(t, 1, 10), nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	svc := services.NewOrderService(services.OrderServiceParams{
		Creator:  creator,
		Notifier: notifier,
	})

	_, err := svc.CreateOrder(ctx, cmd)
	require.NoError(t, err)
	notifier.AssertExpectations(t)
}
