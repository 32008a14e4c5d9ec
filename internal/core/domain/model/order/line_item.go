package order

import (
	"errors"
	"fmt"

	"tavern/internal/core/domain/model/menuitem"
	"tavern/internal/pkg/errs"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through the NewLineItem or RestoreLineItem factory functions.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

	// ErrLineItemAlreadyPersisted is returned when an id is assigned twice.
	// A line item's id is its reconciliation identity and never changes.
	ErrLineItemAlreadyPersisted = errors.New("line item id is already assigned")

	// ErrMenuItemNotPersisted is returned when a line item is composed from a
	// menu item that has no id yet, so the reference cannot be recorded.
	ErrMenuItemNotPersisted = errors.New("menu item must be persisted before it can be ordered")
)

// LineItem is one position on an order: a quantity of a menu item together
// with a frozen copy of that menu item's name, type, price and VAT taken at
// the moment the item was added. Later changes to the menu never retroactively
// alter a line item that was already written.
//
// The id is assigned by the store and is the identity key for reconciliation
// during a full-replace update: an item carrying a stored id is updated in
// place, an item without one is inserted as a new row.
type LineItem struct {
	// id is the storage-assigned identity, 0 until persisted
	id int64

	// orderID links the item to its parent order once the parent is persisted
	orderID int64

	// menuItemID references the catalog entry the snapshot was taken from
	menuItemID int64

	// frozen menu-item snapshot, copied at construction
	itemName      string
	itemType      menuitem.ItemType
	itemPrice     float64
	vatPercentage int
	itemVat       float64

	// quantity must always be positive
	quantity int

	// totalPrice and totalVat are computed by the store from the frozen
	// snapshot, never assigned by callers
	totalPrice float64
	totalVat   float64

	isConstructed bool
}

// NewLineItem composes a line item from a persisted menu item and a quantity.
// The menu item's name, type, price, VAT bracket and VAT amount are copied
// onto the line item here; this copy is what gets stored.
func NewLineItem(item *menuitem.MenuItem, quantity int) (*LineItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if !item.IsPersisted() {
		return nil, ErrMenuItemNotPersisted
	}

	li := &LineItem{
		menuItemID:    item.ID(),
		itemName:      item.Name(),
		itemType:      item.Type(),
		itemPrice:     item.Price(),
		vatPercentage: item.VatPercentage(),
		itemVat:       item.Vat(),
		isConstructed: true,
	}

	if err := li.SetQuantity(quantity); err != nil {
		return nil, err
	}
	return li, nil
}

// RestoreLineItem reconstructs a persisted line item from storage, including
// the snapshot columns and the stored totals.
func RestoreLineItem(
	id, orderID, menuItemID int64,
	itemName string,
	itemType menuitem.ItemType,
	itemPrice float64,
	vatPercentage int,
	itemVat float64,
	quantity int,
	totalPrice, totalVat float64,
) (*LineItem, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("line item id")
	}
	if orderID <= 0 {
		return nil, errs.NewValueIsInvalidError("order id")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return &LineItem{
		id:            id,
		orderID:       orderID,
		menuItemID:    menuItemID,
		itemName:      itemName,
		itemType:      itemType,
		itemPrice:     itemPrice,
		vatPercentage: vatPercentage,
		itemVat:       itemVat,
		quantity:      quantity,
		totalPrice:    totalPrice,
		totalVat:      totalVat,
		isConstructed: true,
	}, nil
}

// Validate ensures the LineItem was created through a factory function.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's identity, 0 until persisted.
func (li *LineItem) ID() int64 {
	return li.id
}

// IsPersisted reports whether the line item has a storage-assigned id.
func (li *LineItem) IsPersisted() bool {
	return li.id > 0
}

// OrderID returns the parent order's id, 0 until the parent is persisted.
func (li *LineItem) OrderID() int64 {
	return li.orderID
}

// MenuItemID returns the referenced catalog entry's id.
func (li *LineItem) MenuItemID() int64 {
	return li.menuItemID
}

// ItemName returns the frozen menu item name.
func (li *LineItem) ItemName() string {
	return li.itemName
}

// ItemType returns the frozen menu category.
func (li *LineItem) ItemType() menuitem.ItemType {
	return li.itemType
}

// ItemPrice returns the frozen unit price.
func (li *LineItem) ItemPrice() float64 {
	return li.itemPrice
}

// VatPercentage returns the frozen tax bracket.
func (li *LineItem) VatPercentage() int {
	return li.vatPercentage
}

// ItemVat returns the frozen per-unit VAT amount.
func (li *LineItem) ItemVat() float64 {
	return li.itemVat
}

// Quantity returns how many units of the menu item are ordered.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// TotalPrice returns the store-computed quantity times unit price.
func (li *LineItem) TotalPrice() float64 {
	return li.totalPrice
}

// TotalVat returns the store-computed quantity times unit VAT.
func (li *LineItem) TotalVat() float64 {
	return li.totalVat
}

// SetQuantity changes the ordered quantity. This is the only attribute of a
// persisted line item that a full-replace update modifies in place.
func (li *LineItem) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

// AssignOrder stamps the parent order's id on the item. Called when the item
// is added to an already-persisted order, or by the caller when composing an
// item-level write against an existing order.
func (li *LineItem) AssignOrder(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}
	li.orderID = orderID
	return nil
}

// MarkPersisted assigns the storage-generated id and the parent order id.
// Intended for the persistence layer, which calls it only after the enclosing
// transaction has committed; a rolled-back write leaves the item untouched.
func (li *LineItem) MarkPersisted(id, orderID int64) error {
	if li.id != 0 {
		return ErrLineItemAlreadyPersisted
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("line item id")
	}
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}
	li.id = id
	li.orderID = orderID
	return nil
}

// Reidentify replaces the item's identity with a freshly generated one. Used
// by the persistence layer when reconciliation finds an item whose stored row
// vanished: the row is rewritten and the item adopts the new id.
func (li *LineItem) Reidentify(id, orderID int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("line item id")
	}
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}
	li.id = id
	li.orderID = orderID
	return nil
}

// SetTotals records the store-computed totals for the item.
// Intended for the persistence layer.
func (li *LineItem) SetTotals(totalPrice, totalVat float64) {
	li.totalPrice = totalPrice
	li.totalVat = totalVat
}
