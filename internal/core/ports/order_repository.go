package ports

import (
	"context"

	"tavern/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates. All
// mutations run inside the unit of work's transaction; generated ids, the
// server creation date, the employee name snapshot and recomputed totals are
// applied to the caller's aggregate only after the transaction commits, so a
// rolled-back operation leaves the aggregate exactly as it was.
type OrderRepository interface {
	// Add persists a new order and all of its line items in one transaction.
	// The order must be valid and not yet persisted.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces a persisted order with the desired state: the header is
	// updated (re-snapshotting the employee name) and the stored line-item set
	// is reconciled against the aggregate's collection by id membership.
	// Items with stored ids are updated in place, items without are inserted,
	// stored rows missing from the collection are deleted.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a persisted order together with its line items.
	Get(ctx context.Context, orderID int64) (*order.Order, error)

	// Delete removes the order and, by cascade, all its line items.
	// Deleting an id that does not exist is not an error.
	Delete(ctx context.Context, orderID int64) error

	// SetPaid performs the terminal paid transition for the order header.
	// Line items are not touched.
	SetPaid(ctx context.Context, orderID int64) error

	// AddLineItem inserts a single item for an already-persisted order without
	// replacing the rest of the collection.
	AddLineItem(ctx context.Context, item *order.LineItem) error

	// UpdateLineItem rewrites a persisted item's quantity, recomputing its
	// totals from the stored frozen snapshot.
	UpdateLineItem(ctx context.Context, item *order.LineItem) error

	// DeleteLineItem removes a single item row. Unknown ids are not an error.
	DeleteLineItem(ctx context.Context, itemID int64) error
}
