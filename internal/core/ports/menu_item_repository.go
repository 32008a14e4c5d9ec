package ports

import (
	"context"

	"tavern/internal/core/domain/model/menuitem"
)

// MenuItemRepository defines the persistence contract for the menu catalog.
type MenuItemRepository interface {
	// Add persists a new menu item; the generated id is applied on commit.
	Add(ctx context.Context, aggregate *menuitem.MenuItem) error

	// Update persists changes to an existing menu item. Line items written
	// earlier keep their frozen snapshot of the previous attributes.
	Update(ctx context.Context, aggregate *menuitem.MenuItem) error

	// Get retrieves a menu item by id.
	Get(ctx context.Context, id int64) (*menuitem.MenuItem, error)

	// Delete removes a menu item. Fails with a constraint violation while
	// order line items still reference it.
	Delete(ctx context.Context, id int64) error
}
