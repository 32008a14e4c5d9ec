package queries

import (
	"context"
	"time"

	"tavern/internal/core/domain/model/menuitem"
	"tavern/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetUnpaidOrdersQueryHandler reads the unpaid working set from the
// unpaid_orders view. Headers come back with their precomputed totals; the
// positions of all unpaid orders are loaded in one follow-up select and
// attached to their aggregates.
type GetUnpaidOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnpaidOrdersQueryHandler creates a handler for unpaid order queries.
// Requires a GORM database connection for query execution.
func NewGetUnpaidOrdersQueryHandler(db *gorm.DB) GetUnpaidOrdersQueryHandler {
	return GetUnpaidOrdersQueryHandler{db: db}
}

// Handle returns every unpaid order as a fully restored aggregate, ordered by
// id for consistent output.
func (h GetUnpaidOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnpaidOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, index, err := h.loadHeaders(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.attachItems(ctx, index); err != nil {
		return nil, err
	}
	return orders, nil
}

func (h GetUnpaidOrdersQueryHandler) loadHeaders(ctx context.Context) ([]*order.Order, map[int64]*order.Order, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			employee_id,
			employee_first_name,
			employee_last_name,
			name,
			creation_date,
			total_price,
			total_vat
		FROM unpaid_orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	index := make(map[int64]*order.Order)

	for rows.Next() {
		var (
			id, employeeID       int64
			firstName, lastName  string
			name                 string
			creationDate         time.Time
			totalPrice, totalVat float64
		)
		if err = rows.Scan(&id, &employeeID, &firstName, &lastName,
			&name, &creationDate, &totalPrice, &totalVat); err != nil {
			return nil, nil, err
		}

		restored, restoreErr := order.RestoreOrder(id, employeeID,
			firstName, lastName, name, creationDate, false, totalPrice, totalVat)
		if restoreErr != nil {
			return nil, nil, restoreErr
		}
		orders = append(orders, restored)
		index[id] = restored
	}
	if err = rows.Err(); err != nil {
		return nil, nil, err
	}
	return orders, index, nil
}

func (h GetUnpaidOrdersQueryHandler) attachItems(ctx context.Context, index map[int64]*order.Order) error {
	orderIDs := make([]int64, 0, len(index))
	for id := range index {
		orderIDs = append(orderIDs, id)
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
		WHERE order_id IN ?
		ORDER BY order_id, id
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

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
			return err
		}

		item, restoreErr := order.RestoreLineItem(id, orderID, menuItemID,
			itemName, menuitem.ItemType(itemType), itemPrice,
			vatPercentage, itemVat, quantity, totalPrice, totalVat)
		if restoreErr != nil {
			return restoreErr
		}
		if restoreErr = index[orderID].AttachRestoredLineItem(item); restoreErr != nil {
			return restoreErr
		}
	}
	return rows.Err()
}
