package commands

import (
	"context"

	"tavern/internal/core/domain/model/menuitem"
)

// UpdateMenuItemCommandHandler handles catalog rewrites. Stored positions keep
// their frozen snapshot; only future orders see the new attributes.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuItemUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for catalog rewrites.
func NewUpdateMenuItemCommandHandler(uowFactory MenuItemUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the rewrite, rederiving the VAT amount from the new price and
// bracket.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
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

	rewritten, err := menuitem.NewMenuItem(cmd.Name(), cmd.ItemType(), cmd.Price(), cmd.VatPercentage())
	if err != nil {
		return err
	}
	if err = rewritten.MarkPersisted(cmd.MenuItemID()); err != nil {
		return err
	}

	if err = uow.MenuItemRepository().Update(ctx, rewritten); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
