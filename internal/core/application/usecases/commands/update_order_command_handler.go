package commands

import (
	"context"

	"tavern/internal/core/domain/model/order"
	"tavern/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles full-replace order updates. The stored
// aggregate is loaded, mutated to match the desired state and written back
// through the reconciling repository, all inside one transaction.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for full-replace updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reconciles the stored order with the desired state and returns the
// updated aggregate: kept positions with their new quantities, new positions
// with freshly generated ids and frozen snapshots, removed positions gone,
// the employee name re-snapshotted and the totals recomputed. On any error
// nothing is applied.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	if err = aggregate.ReassignEmployee(cmd.EmployeeID()); err != nil {
		return nil, err
	}
	if err = aggregate.Rename(cmd.Name()); err != nil {
		return nil, err
	}

	if err = h.reconcileItems(ctx, uow, aggregate, cmd.Items()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// reconcileItems mutates the aggregate's collection to match the desired
// specs: quantities of kept positions change in place, positions missing from
// the desired set are dropped, the rest are composed fresh from the catalog.
func (h *UpdateOrderCommandHandler) reconcileItems(
	ctx context.Context,
	uow OrderUoW,
	aggregate *order.Order,
	specs []LineItemSpec,
) error {
	current := make(map[int64]*order.LineItem, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		current[item.ID()] = item
	}

	desired := make(map[int64]bool, len(specs))
	menuRepo := uow.MenuItemRepository()
	for _, spec := range specs {
		if item, ok := current[spec.LineItemID]; ok && spec.LineItemID > 0 {
			desired[spec.LineItemID] = true
			if err := item.SetQuantity(spec.Quantity); err != nil {
				return err
			}
			continue
		}

		if spec.MenuItemID <= 0 {
			// A position id that is neither stored nor accompanied by a
			// catalog reference cannot be materialized.
			return errs.NewObjectNotFoundError("lineItemId", spec.LineItemID)
		}

		menuItem, err := menuRepo.Get(ctx, spec.MenuItemID)
		if err != nil {
			return err
		}
		lineItem, err := order.NewLineItem(menuItem, spec.Quantity)
		if err != nil {
			return err
		}
		if err = aggregate.AddLineItem(lineItem); err != nil {
			return err
		}
	}

	for id := range current {
		if !desired[id] {
			if err := aggregate.RemoveLineItem(id); err != nil {
				return err
			}
		}
	}
	return nil
}
