package orderrepo

import (
	"context"
	"database/sql"
	"errors"

	"tavern/internal/adapters/out/postgres/pgerr"
	"tavern/internal/core/domain/model/menuitem"
	"tavern/internal/core/domain/model/order"
	"tavern/internal/pkg/errs"

	"gorm.io/gorm"
)

// commitTracker defers aggregate enrichment until the enclosing transaction
// commits. Implemented by the unit of work.
type commitTracker interface {
	TrackCommit(hook func())
}

// GormOrderRepository implements ports.OrderRepository. All SQL runs on the
// connection handed in by the unit of work, which is the active transaction
// during mutations. Generated ids, the server creation date, the employee
// name snapshot and recomputed totals are written back onto the caller's
// aggregate through commit hooks only, so a rollback leaves the aggregate
// untouched.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker commitTracker
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker commitTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new order aggregate: one header row whose employee name
// snapshot is taken from the employees table in the same statement, one row
// per line item carrying the item's frozen menu snapshot, then a totals
// readback over the rows just written.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.IsPersisted() {
		return order.ErrOrderAlreadyPersisted
	}

	var hdr struct {
		id           int64
		creationDate sql.NullTime
		firstName    string
		lastName     string
	}
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO orders (employee_id, name, is_paid, employee_first_name, employee_last_name)
		SELECT e.id, ?, ?, e.first_name, e.last_name
		FROM employees e
		WHERE e.id = ?
		RETURNING id, creation_date, employee_first_name, employee_last_name
	`, aggregate.Name(), aggregate.IsPaid(), aggregate.EmployeeID()).
		Row().Scan(&hdr.id, &hdr.creationDate, &hdr.firstName, &hdr.lastName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.NewConstraintViolationErrorWithCause("orders.employee_id",
				errs.NewObjectNotFoundError("employeeId", aggregate.EmployeeID()))
		}
		return pgerr.Classify("order create", err)
	}

	itemIDs := make([]int64, len(aggregate.LineItems()))
	for i, item := range aggregate.LineItems() {
		itemIDs[i], err = r.insertItem(ctx, hdr.id, item)
		if err != nil {
			return err
		}
	}

	totalPrice, totalVat, err := r.sumTotals(ctx, hdr.id)
	if err != nil {
		return err
	}

	r.tracker.TrackCommit(func() {
		_ = aggregate.MarkPersisted(hdr.id, hdr.creationDate.Time, hdr.firstName, hdr.lastName)
		for i, item := range aggregate.LineItems() {
			_ = item.MarkPersisted(itemIDs[i], hdr.id)
			item.SetTotals(float64(item.Quantity())*item.ItemPrice(), float64(item.Quantity())*item.ItemVat())
		}
		aggregate.SetTotals(totalPrice, totalVat)
	})
	return nil
}

// Update replaces a persisted order with the aggregate's desired state. The
// header is rewritten with a fresh employee name snapshot, then the stored
// line-item set is reconciled against the desired collection by identity:
// desired items whose id matches a stored row are updated in place (quantity
// only, totals recomputed from the row's frozen price), items with an absent
// or unknown id are inserted, and stored rows whose id is no longer desired
// are deleted. All of it is one transaction; on failure nothing is applied
// and new items keep their absent ids.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.IsPersisted() {
		return errs.NewValueIsRequiredError("order id")
	}

	firstName, lastName, err := r.updateHeader(ctx, aggregate)
	if err != nil {
		return err
	}

	stored, err := r.storedItemIDs(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	kept := make(map[int64]bool, len(stored))
	for _, item := range aggregate.LineItems() {
		switch {
		case item.IsPersisted() && stored[item.ID()]:
			kept[item.ID()] = true
			if err = r.updateItemQuantity(ctx, item); err != nil {
				return err
			}
		case item.IsPersisted():
			// The id no longer exists in storage, so this is a delete+insert:
			// the row is written fresh and the item takes the new identity.
			if err = r.reinsertItem(ctx, aggregate.ID(), item); err != nil {
				return err
			}
		default:
			var id int64
			if id, err = r.insertItem(ctx, aggregate.ID(), item); err != nil {
				return err
			}
			r.stageItemPersisted(aggregate.ID(), item, id)
		}
	}

	toDelete := make([]int64, 0, len(stored))
	for id := range stored {
		if !kept[id] {
			toDelete = append(toDelete, id)
		}
	}
	if len(toDelete) > 0 {
		if err = r.db.WithContext(ctx).
			Exec(`DELETE FROM order_items WHERE id IN ?`, toDelete).Error; err != nil {
			return pgerr.Classify("order update", err)
		}
	}

	totalPrice, totalVat, err := r.sumTotals(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	r.tracker.TrackCommit(func() {
		aggregate.RefreshSnapshot(firstName, lastName)
		aggregate.SetTotals(totalPrice, totalVat)
	})
	return nil
}

// Get retrieves an order header and its line items, rebuilding the aggregate
// from the stored snapshot columns and totals.
func (r *GormOrderRepository) Get(ctx context.Context, orderID int64) (*order.Order, error) {
	var hdr OrderDTO
	if err := r.db.WithContext(ctx).First(&hdr, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID)
		}
		return nil, pgerr.Classify("order get", err)
	}

	var itemDTOs []OrderItemDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).Order("id").
		Find(&itemDTOs).Error; err != nil {
		return nil, pgerr.Classify("order get", err)
	}

	var totalPrice, totalVat float64
	for _, dto := range itemDTOs {
		totalPrice += dto.TotalPrice
		totalVat += dto.TotalVat
	}

	aggregate, err := order.RestoreOrder(hdr.ID, hdr.EmployeeID,
		hdr.EmployeeFirstName, hdr.EmployeeLastName, hdr.Name,
		hdr.CreationDate, hdr.IsPaid, totalPrice, totalVat)
	if err != nil {
		return nil, err
	}

	for _, dto := range itemDTOs {
		item, itemErr := order.RestoreLineItem(dto.ID, dto.OrderID, dto.MenuItemID,
			dto.ItemName, menuitem.ItemType(dto.ItemType), dto.ItemPrice,
			dto.VatPercentage, dto.ItemVat, dto.Quantity, dto.TotalPrice, dto.TotalVat)
		if itemErr != nil {
			return nil, itemErr
		}
		if itemErr = aggregate.AttachRestoredLineItem(item); itemErr != nil {
			return nil, itemErr
		}
	}
	return aggregate, nil
}

// Delete removes the order header; the order_items foreign key cascades the
// removal to every line item. Deleting an id with no stored order succeeds.
func (r *GormOrderRepository) Delete(ctx context.Context, orderID int64) error {
	if err := r.db.WithContext(ctx).
		Exec(`DELETE FROM orders WHERE id = ?`, orderID).Error; err != nil {
		return pgerr.Classify("order delete", err)
	}
	return nil
}

// SetPaid performs the one-way terminal transition on the header row.
func (r *GormOrderRepository) SetPaid(ctx context.Context, orderID int64) error {
	result := r.db.WithContext(ctx).
		Exec(`UPDATE orders SET is_paid = TRUE WHERE id = ?`, orderID)
	if result.Error != nil {
		return pgerr.Classify("order payment", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", orderID)
	}
	return nil
}

// AddLineItem inserts one item row for an already-persisted order.
func (r *GormOrderRepository) AddLineItem(ctx context.Context, item *order.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if item.IsPersisted() {
		return order.ErrLineItemAlreadyPersisted
	}
	if item.OrderID() <= 0 {
		return errs.NewValueIsRequiredError("order id")
	}

	id, err := r.insertItem(ctx, item.OrderID(), item)
	if err != nil {
		return err
	}
	r.stageItemPersisted(item.OrderID(), item, id)
	return nil
}

// UpdateLineItem rewrites a persisted item's quantity in place.
func (r *GormOrderRepository) UpdateLineItem(ctx context.Context, item *order.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if !item.IsPersisted() {
		return errs.NewValueIsRequiredError("line item id")
	}
	return r.updateItemQuantity(ctx, item)
}

// DeleteLineItem removes one item row. Unknown ids succeed.
func (r *GormOrderRepository) DeleteLineItem(ctx context.Context, itemID int64) error {
	if err := r.db.WithContext(ctx).
		Exec(`DELETE FROM order_items WHERE id = ?`, itemID).Error; err != nil {
		return pgerr.Classify("line item delete", err)
	}
	return nil
}

// updateHeader rewrites the header fields, re-reading the employee name so the
// snapshot follows a reassignment. Zero rows updated means either the order or
// the employee is gone; the employee is checked to tell the two apart.
func (r *GormOrderRepository) updateHeader(ctx context.Context, aggregate *order.Order) (string, string, error) {
	var firstName, lastName string
	err := r.db.WithContext(ctx).Raw(`
		UPDATE orders o
		SET employee_id = e.id,
		    name = ?,
		    employee_first_name = e.first_name,
		    employee_last_name = e.last_name
		FROM employees e
		WHERE e.id = ? AND o.id = ?
		RETURNING e.first_name, e.last_name
	`, aggregate.Name(), aggregate.EmployeeID(), aggregate.ID()).
		Row().Scan(&firstName, &lastName)
	if err == nil {
		return firstName, lastName, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", "", pgerr.Classify("order update", err)
	}

	var employeeExists bool
	if checkErr := r.db.WithContext(ctx).
		Raw(`SELECT EXISTS (SELECT 1 FROM employees WHERE id = ?)`, aggregate.EmployeeID()).
		Row().Scan(&employeeExists); checkErr != nil {
		return "", "", pgerr.Classify("order update", checkErr)
	}
	if !employeeExists {
		return "", "", errs.NewConstraintViolationErrorWithCause("orders.employee_id",
			errs.NewObjectNotFoundError("employeeId", aggregate.EmployeeID()))
	}
	return "", "", errs.NewObjectNotFoundError("orderId", aggregate.ID())
}

// storedItemIDs reads the set of line-item ids currently stored for the order.
func (r *GormOrderRepository) storedItemIDs(ctx context.Context, orderID int64) (map[int64]bool, error) {
	rows, err := r.db.WithContext(ctx).
		Raw(`SELECT id FROM order_items WHERE order_id = ?`, orderID).Rows()
	if err != nil {
		return nil, pgerr.Classify("order update", err)
	}
	defer rows.Close()

	stored := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, pgerr.Classify("order update", err)
		}
		stored[id] = true
	}
	if err = rows.Err(); err != nil {
		return nil, pgerr.Classify("order update", err)
	}
	return stored, nil
}

// insertItem writes one item row with the item's frozen menu snapshot and the
// totals derived from it, returning the generated id. A dangling menu-item
// reference surfaces as a constraint violation from the foreign key.
func (r *GormOrderRepository) insertItem(ctx context.Context, orderID int64, item *order.LineItem) (int64, error) {
	if err := item.Validate(); err != nil {
		return 0, err
	}

	var id int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO order_items
			(order_id, menu_item_id, quantity,
			 item_name, item_type, item_price, vat_percentage, item_vat,
			 total_price, total_vat)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`, orderID, item.MenuItemID(), item.Quantity(),
		item.ItemName(), string(item.ItemType()), item.ItemPrice(), item.VatPercentage(), item.ItemVat(),
		float64(item.Quantity())*item.ItemPrice(), float64(item.Quantity())*item.ItemVat()).
		Row().Scan(&id)
	if err != nil {
		return 0, pgerr.Classify("line item insert", err)
	}
	return id, nil
}

// reinsertItem handles a desired item whose id vanished from storage: the row
// is inserted fresh and, on commit, the item adopts the newly generated
// identity in place of the stale one.
func (r *GormOrderRepository) reinsertItem(ctx context.Context, orderID int64, item *order.LineItem) error {
	id, err := r.insertItem(ctx, orderID, item)
	if err != nil {
		return err
	}
	r.tracker.TrackCommit(func() {
		_ = item.Reidentify(id, orderID)
		item.SetTotals(float64(item.Quantity())*item.ItemPrice(), float64(item.Quantity())*item.ItemVat())
	})
	return nil
}

// updateItemQuantity rewrites the quantity and recomputes the totals from the
// frozen per-unit values stored on the row itself, not from live menu data.
func (r *GormOrderRepository) updateItemQuantity(ctx context.Context, item *order.LineItem) error {
	var totalPrice, totalVat float64
	err := r.db.WithContext(ctx).Raw(`
		UPDATE order_items
		SET quantity = ?,
		    total_price = ? * item_price,
		    total_vat = ? * item_vat
		WHERE id = ?
		RETURNING total_price, total_vat
	`, item.Quantity(), item.Quantity(), item.Quantity(), item.ID()).
		Row().Scan(&totalPrice, &totalVat)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.NewObjectNotFoundError("lineItemId", item.ID())
		}
		return pgerr.Classify("line item update", err)
	}

	r.tracker.TrackCommit(func() {
		item.SetTotals(totalPrice, totalVat)
	})
	return nil
}

// sumTotals reads the order's totals back from the rows written in this
// transaction.
func (r *GormOrderRepository) sumTotals(ctx context.Context, orderID int64) (float64, float64, error) {
	var totalPrice, totalVat float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_price), 0), COALESCE(SUM(total_vat), 0)
		FROM order_items
		WHERE order_id = ?
	`, orderID).Row().Scan(&totalPrice, &totalVat)
	if err != nil {
		return 0, 0, pgerr.Classify("order totals", err)
	}
	return totalPrice, totalVat, nil
}

// stageItemPersisted defers the id write-back for a freshly inserted item.
func (r *GormOrderRepository) stageItemPersisted(orderID int64, item *order.LineItem, id int64) {
	r.tracker.TrackCommit(func() {
		_ = item.MarkPersisted(id, orderID)
		item.SetTotals(float64(item.Quantity())*item.ItemPrice(), float64(item.Quantity())*item.ItemVat())
	})
}
