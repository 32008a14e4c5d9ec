package commands

import (
	"context"

	"tavern/internal/core/domain/model/order"
)

// RemoveLineItemCommandHandler drops one stored position from an order.
type RemoveLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveLineItemCommandHandler creates a handler for position removal.
func NewRemoveLineItemCommandHandler(uowFactory OrderUoWFactory) RemoveLineItemCommandHandler {
	return RemoveLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle drops the position. Settled orders reject the removal; unknown
// position ids succeed, so retried removals are safe.
func (h *RemoveLineItemCommandHandler) Handle(ctx context.Context, cmd RemoveLineItemCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if aggregate.IsPaid() {
		return order.ErrOrderAlreadyPaid
	}

	if err = orderRepo.DeleteLineItem(ctx, cmd.LineItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
