package commands

import (
	"context"
)

// DeleteMenuItemCommandHandler handles catalog removal.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuItemUoWFactory
}

// NewDeleteMenuItemCommandHandler creates a handler for catalog removal.
func NewDeleteMenuItemCommandHandler(uowFactory MenuItemUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the catalog entry. The foreign key on order positions rejects
// the removal while stored positions still reference the entry.
func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
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

	if err := uow.MenuItemRepository().Delete(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
