package queries

import (
	"context"
	"database/sql"
	"errors"

	"tavern/internal/core/domain/model/menuitem"
	"tavern/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetMenuItemQueryHandler reads one catalog entry.
type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemQueryHandler creates a handler for single-entry queries.
func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

// Handle returns the catalog entry or not found.
func (h GetMenuItemQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemQuery,
) (*menuitem.MenuItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		id            int64
		name          string
		itemType      string
		price, vat    float64
		vatPercentage int
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, item_type, price, vat_percentage, vat
		FROM menu_items
		WHERE id = ?
	`, query.MenuItemID()).Row().Scan(&id, &name, &itemType, &price, &vatPercentage, &vat)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("menuItemId", query.MenuItemID())
		}
		return nil, err
	}

	return menuitem.RestoreMenuItem(id, name, menuitem.ItemType(itemType), price, vatPercentage, vat)
}
