package order

import (
	"errors"
	"time"

	"tavern/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyPersisted is returned when an id is assigned twice.
	// An order's id is immutable once the store has generated it.
	ErrOrderAlreadyPersisted = errors.New("order id is already assigned")

	// ErrOrderAlreadyPaid is returned by mutations attempted after the order
	// reached its terminal paid state.
	ErrOrderAlreadyPaid = errors.New("order is already paid")
)

// Order is the aggregate root for a table's bill: header fields plus an
// ordered collection of line items treated as one consistency boundary.
//
// Order follows these invariants:
//   - id is absent (0) until the store persists it, immutable thereafter
//   - the employee name snapshot and creationDate are assigned by the store
//   - isPaid transitions one way, false to true, and no mutation is allowed
//     afterwards
//   - totalPrice and totalVat are recomputed by the store from persisted line
//     items, never assigned independently by callers
//   - every persisted line item carries this order's id
type Order struct {
	// id is the storage-assigned identity, 0 until persisted
	id int64

	// employeeID references the employee who opened the order
	employeeID int64

	// employeeFirstName and employeeLastName are a copy-once snapshot taken by
	// the store at write time; a later rename never changes this order
	employeeFirstName string
	employeeLastName  string

	// name labels the order, e.g. "Table 4"
	name string

	// isPaid marks the terminal state
	isPaid bool

	// creationDate is assigned by the database server on insert
	creationDate time.Time

	// lineItems is the ordered child collection
	lineItems []*LineItem

	// totalPrice and totalVat are store-computed sums over the line items
	totalPrice float64
	totalVat   float64

	isConstructed bool
}

// NewOrder creates an unpaid, unpersisted Order for the given employee.
// The employee reference must be positive and the name non-empty; referential
// existence of the employee is enforced by the store at write time.
func NewOrder(employeeID int64, name string) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setEmployeeID(employeeID),
		o.setName(name),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs a persisted order header from storage, including
// the name snapshot and the precomputed totals. Line items are loaded
// separately and attached with AddLineItem.
func RestoreOrder(
	id, employeeID int64,
	employeeFirstName, employeeLastName, name string,
	creationDate time.Time,
	isPaid bool,
	totalPrice, totalVat float64,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("order id")
	}

	o, err := NewOrder(employeeID, name)
	if err != nil {
		return nil, err
	}

	o.id = id
	o.employeeFirstName = employeeFirstName
	o.employeeLastName = employeeLastName
	o.creationDate = creationDate
	o.isPaid = isPaid
	o.totalPrice = totalPrice
	o.totalVat = totalVat
	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their storage identity. Unpersisted orders
// are never equal.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id > 0 && o.id == other.id
}

// ID returns the order's identifier, 0 until persisted.
func (o *Order) ID() int64 {
	return o.id
}

// IsPersisted reports whether the order has a storage-assigned id.
func (o *Order) IsPersisted() bool {
	return o.id > 0
}

// EmployeeID returns the id of the employee who opened the order.
func (o *Order) EmployeeID() int64 {
	return o.employeeID
}

// EmployeeFirstName returns the snapshotted first name, empty until persisted.
func (o *Order) EmployeeFirstName() string {
	return o.employeeFirstName
}

// EmployeeLastName returns the snapshotted last name, empty until persisted.
func (o *Order) EmployeeLastName() string {
	return o.employeeLastName
}

// Name returns the order's label.
func (o *Order) Name() string {
	return o.name
}

// IsPaid reports whether the order reached its terminal state.
func (o *Order) IsPaid() bool {
	return o.isPaid
}

// CreationDate returns the server-assigned creation time, zero until persisted.
func (o *Order) CreationDate() time.Time {
	return o.creationDate
}

// LineItems returns the ordered child collection.
func (o *Order) LineItems() []*LineItem {
	return o.lineItems
}

// TotalPrice returns the store-computed sum over the line items.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// TotalVat returns the store-computed VAT sum over the line items.
func (o *Order) TotalVat() float64 {
	return o.totalVat
}

// AddLineItem appends an item to the order's collection. When the order is
// already persisted the item is stamped with the order's id immediately;
// otherwise it is carried unstamped until the order is created.
func (o *Order) AddLineItem(item *LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if o.isPaid {
		return ErrOrderAlreadyPaid
	}

	if o.IsPersisted() {
		if err := item.AssignOrder(o.id); err != nil {
			return err
		}
	}
	o.lineItems = append(o.lineItems, item)
	return nil
}

// AttachRestoredLineItem appends an already-persisted item loaded from storage.
// Unlike AddLineItem it works on paid orders, so a settled order can still be
// rebuilt in full. The item must belong to this order.
func (o *Order) AttachRestoredLineItem(item *LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if !item.IsPersisted() || item.OrderID() != o.id {
		return errs.NewValueIsInvalidError("line item order id")
	}
	o.lineItems = append(o.lineItems, item)
	return nil
}

// RemoveLineItem drops the item with the given id from the in-memory
// collection. A subsequent full-replace update will then delete the stored
// row, because its id no longer appears among the desired items.
func (o *Order) RemoveLineItem(itemID int64) error {
	if o.isPaid {
		return ErrOrderAlreadyPaid
	}

	for i, item := range o.lineItems {
		if item.ID() == itemID {
			o.lineItems = append(o.lineItems[:i], o.lineItems[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("lineItemId", itemID)
}

// Rename changes the order's label.
func (o *Order) Rename(name string) error {
	if o.isPaid {
		return ErrOrderAlreadyPaid
	}
	return o.setName(name)
}

// ReassignEmployee hands the order to a different employee. The store refreshes
// the name snapshot on the next update.
func (o *Order) ReassignEmployee(employeeID int64) error {
	if o.isPaid {
		return ErrOrderAlreadyPaid
	}
	return o.setEmployeeID(employeeID)
}

// MarkPaid performs the one-way terminal transition. After payment the order
// leaves the unpaid working set and no further mutation is permitted.
func (o *Order) MarkPaid() error {
	if o.isPaid {
		return ErrOrderAlreadyPaid
	}
	o.isPaid = true
	return nil
}

// MarkPersisted assigns the storage-generated id, the server creation date and
// the employee name snapshot, and stamps every line item with the new order id.
// Intended for the persistence layer, which calls it only after the enclosing
// transaction has committed; a rolled-back create leaves the order with id
// still 0, signalling "not persisted".
func (o *Order) MarkPersisted(id int64, creationDate time.Time, employeeFirstName, employeeLastName string) error {
	if o.id != 0 {
		return ErrOrderAlreadyPersisted
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}

	o.id = id
	o.creationDate = creationDate
	o.employeeFirstName = employeeFirstName
	o.employeeLastName = employeeLastName

	for _, item := range o.lineItems {
		if !item.IsPersisted() {
			if err := item.AssignOrder(id); err != nil {
				return err
			}
		}
	}
	return nil
}

// RefreshSnapshot replaces the employee name snapshot with the values the
// store re-read during an update. Intended for the persistence layer.
func (o *Order) RefreshSnapshot(employeeFirstName, employeeLastName string) {
	o.employeeFirstName = employeeFirstName
	o.employeeLastName = employeeLastName
}

// SetTotals records the store-computed totals for the order.
// Intended for the persistence layer.
func (o *Order) SetTotals(totalPrice, totalVat float64) {
	o.totalPrice = totalPrice
	o.totalVat = totalVat
}

func (o *Order) setEmployeeID(employeeID int64) error {
	if employeeID <= 0 {
		return errs.NewValueIsInvalidError("employee id")
	}
	o.employeeID = employeeID
	return nil
}

func (o *Order) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	o.name = name
	return nil
}
