package commands

import (
	"context"

	"tavern/internal/core/domain/model/order"
	"tavern/internal/pkg/errs"
)

// EditLineItemCommandHandler changes one stored position's quantity. The
// totals are recomputed by the store from the row's frozen snapshot, not from
// live catalog prices.
type EditLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewEditLineItemCommandHandler creates a handler for quantity edits.
func NewEditLineItemCommandHandler(uowFactory OrderUoWFactory) EditLineItemCommandHandler {
	return EditLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the quantity change and returns the position with its
// recomputed totals. Settled orders reject the edit.
func (h *EditLineItemCommandHandler) Handle(ctx context.Context, cmd EditLineItemCommand) (*order.LineItem, error) {
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
	if aggregate.IsPaid() {
		return nil, order.ErrOrderAlreadyPaid
	}

	var lineItem *order.LineItem
	for _, item := range aggregate.LineItems() {
		if item.ID() == cmd.LineItemID() {
			lineItem = item
			break
		}
	}
	if lineItem == nil {
		return nil, errs.NewObjectNotFoundError("lineItemId", cmd.LineItemID())
	}

	if err = lineItem.SetQuantity(cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateLineItem(ctx, lineItem); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return lineItem, nil
}
