package queries

import (
	"context"

	"tavern/internal/core/domain/model/menuitem"

	"gorm.io/gorm"
)

// GetMenuItemsQueryHandler reads the menu catalog.
type GetMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemsQueryHandler creates a handler for catalog queries.
func NewGetMenuItemsQueryHandler(db *gorm.DB) GetMenuItemsQueryHandler {
	return GetMenuItemsQueryHandler{db: db}
}

// Handle returns every catalog entry ordered by id.
func (h GetMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemsQuery,
) ([]*menuitem.MenuItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, item_type, price, vat_percentage, vat
		FROM menu_items
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*menuitem.MenuItem, 0)
	for rows.Next() {
		var (
			id            int64
			name          string
			itemType      string
			price, vat    float64
			vatPercentage int
		)
		if err = rows.Scan(&id, &name, &itemType, &price, &vatPercentage, &vat); err != nil {
			return nil, err
		}

		item, restoreErr := menuitem.RestoreMenuItem(id, name,
			menuitem.ItemType(itemType), price, vatPercentage, vat)
		if restoreErr != nil {
			return nil, restoreErr
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
