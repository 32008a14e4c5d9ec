package commands

import (
	"context"

	"tavern/internal/core/domain/model/menuitem"
)

// CreateMenuItemCommandHandler handles catalog additions.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuItemUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for catalog additions.
func NewCreateMenuItemCommandHandler(uowFactory MenuItemUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the catalog entry and returns the aggregate carrying its
// generated id and derived VAT amount.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (*menuitem.MenuItem, error) {
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

	newItem, err := menuitem.NewMenuItem(cmd.Name(), cmd.ItemType(), cmd.Price(), cmd.VatPercentage())
	if err != nil {
		return nil, err
	}

	if err = uow.MenuItemRepository().Add(ctx, newItem); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newItem, nil
}
