package commands

import (
	"context"

	"tavern/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for opening an order.
// Each requested position snapshots its menu item inside the same transaction
// that persists the order, so the frozen prices match the catalog at the
// moment of creation.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(employeeID, "Table 4", items)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("Order %d opened", created.ID())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted
// aggregate carrying its generated id, server creation date, employee name
// snapshot and store-computed totals. On any error the transaction is rolled
// back and the returned order is nil.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	newOrder, err := order.NewOrder(cmd.EmployeeID(), cmd.Name())
	if err != nil {
		return nil, err
	}

	menuRepo := uow.MenuItemRepository()
	for _, spec := range cmd.Items() {
		menuItem, itemErr := menuRepo.Get(ctx, spec.MenuItemID)
		if itemErr != nil {
			return nil, itemErr
		}

		lineItem, itemErr := order.NewLineItem(menuItem, spec.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}

		if itemErr = newOrder.AddLineItem(lineItem); itemErr != nil {
			return nil, itemErr
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
