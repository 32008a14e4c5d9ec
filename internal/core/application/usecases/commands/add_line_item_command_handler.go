package commands

import (
	"context"

	"tavern/internal/core/domain/model/order"
)

// AddLineItemCommandHandler appends one position to an existing order. The
// menu item is read and snapshotted inside the same transaction that writes
// the row.
type AddLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddLineItemCommandHandler creates a handler for single-position appends.
func NewAddLineItemCommandHandler(uowFactory OrderUoWFactory) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle appends the position and returns it carrying its generated id and
// store-computed totals. Settled orders reject the append.
func (h *AddLineItemCommandHandler) Handle(ctx context.Context, cmd AddLineItemCommand) (*order.LineItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	menuItem, err := uow.MenuItemRepository().Get(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	lineItem, err := order.NewLineItem(menuItem, cmd.Quantity())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AddLineItem(lineItem); err != nil {
		return nil, err
	}

	if err = orderRepo.AddLineItem(ctx, lineItem); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return lineItem, nil
}
