package commands

import (
	"context"
)

// PayOrderCommandHandler handles the terminal paid transition.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPayOrderCommandHandler creates a handler for order settlement.
func NewPayOrderCommandHandler(uowFactory OrderUoWFactory) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the order paid. The order's rows stay in storage for reporting;
// only the header flag changes. Settling an unknown order returns not found.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
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

	if err := uow.OrderRepository().SetPaid(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
