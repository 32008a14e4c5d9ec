package queries

import (
	"context"

	"tavern/internal/core/domain/model/menuitem"
	"tavern/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderLineItemsQueryHandler reads one order's positions with the snapshot
// columns that were frozen when each position was written.
type GetOrderLineItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderLineItemsQueryHandler creates a handler for position queries.
func NewGetOrderLineItemsQueryHandler(db *gorm.DB) GetOrderLineItemsQueryHandler {
	return GetOrderLineItemsQueryHandler{db: db}
}

// Handle returns the order's positions ordered by id. An order without
// positions, or an unknown order, yields an empty slice.
func (h GetOrderLineItemsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderLineItemsQuery,
) ([]*order.LineItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			menu_item_id,
			item_name,
			item_type,
			item_price,
			vat_percentage,
			item_vat,
			quantity,
			total_price,
			total_vat
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*order.LineItem, 0)
	for rows.Next() {
		var (
			id, orderID, menuItemID int64
			itemName, itemType      string
			itemPrice, itemVat      float64
			vatPercentage, quantity int
			totalPrice, totalVat    float64
		)
		if err = rows.Scan(&id, &orderID, &menuItemID, &itemName, &itemType,
			&itemPrice, &vatPercentage, &itemVat, &quantity, &totalPrice, &totalVat); err != nil {
			return nil, err
		}

		item, restoreErr := order.RestoreLineItem(id, orderID, menuItemID,
			itemName, menuitem.ItemType(itemType), itemPrice,
			vatPercentage, itemVat, quantity, totalPrice, totalVat)
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
