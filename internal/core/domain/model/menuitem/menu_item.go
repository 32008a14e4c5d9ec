// Package menuitem contains the MenuItem entity, the priced catalog entry that
// order line items snapshot at the moment they are composed.
package menuitem

import (
	"errors"
	"fmt"

	"tavern/internal/pkg/errs"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
	// created through the NewMenuItem or RestoreMenuItem factory functions.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

	// ErrMenuItemAlreadyPersisted is returned when an id is assigned twice.
	ErrMenuItemAlreadyPersisted = errors.New("menu item id is already assigned")
)

// ItemType classifies a menu item for grouping on menus and reports.
type ItemType string

const (
	Appetizer ItemType = "appetizer"
	Main      ItemType = "main"
	Dessert   ItemType = "dessert"
	Beverage  ItemType = "beverage"
)

// IsValid reports whether the type is one of the known menu categories.
func (t ItemType) IsValid() bool {
	switch t {
	case Appetizer, Main, Dessert, Beverage:
		return true
	}
	return false
}

// validVatPercentages are the tax brackets the business operates under.
var validVatPercentages = []int{0, 10, 15, 21}

// MenuItem represents a sellable catalog entry.
//
// MenuItem follows these invariants:
//   - Name must be non-empty
//   - ItemType must be a known category
//   - Price must be positive
//   - VatPercentage must be one of the configured brackets
//   - The VAT amount is derived from price and bracket, never set directly
type MenuItem struct {
	id            int64
	name          string
	itemType      ItemType
	price         float64
	vatPercentage int
	vat           float64

	isConstructed bool
}

// NewMenuItem creates an unpersisted MenuItem with validation. The VAT amount
// is derived as price multiplied by the bracket percentage.
func NewMenuItem(name string, itemType ItemType, price float64, vatPercentage int) (*MenuItem, error) {
	item := &MenuItem{isConstructed: true}

	if err := errors.Join(
		item.setName(name),
		item.setItemType(itemType),
		item.setPrice(price),
		item.setVatPercentage(vatPercentage),
	); err != nil {
		return nil, err
	}

	item.vat = item.price * float64(item.vatPercentage) / 100
	return item, nil
}

// RestoreMenuItem reconstructs a persisted MenuItem from storage, keeping the
// stored VAT amount rather than rederiving it.
func RestoreMenuItem(id int64, name string, itemType ItemType, price float64, vatPercentage int, vat float64) (*MenuItem, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("menu item id")
	}

	item, err := NewMenuItem(name, itemType, price, vatPercentage)
	if err != nil {
		return nil, err
	}
	item.id = id
	item.vat = vat
	return item, nil
}

// Validate ensures the MenuItem was created through a factory function.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's identifier, 0 until persisted.
func (m *MenuItem) ID() int64 {
	return m.id
}

// IsPersisted reports whether the menu item has a storage-assigned id.
func (m *MenuItem) IsPersisted() bool {
	return m.id > 0
}

// Name returns the menu item's display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Type returns the menu category.
func (m *MenuItem) Type() ItemType {
	return m.itemType
}

// Price returns the unit price.
func (m *MenuItem) Price() float64 {
	return m.price
}

// VatPercentage returns the tax bracket.
func (m *MenuItem) VatPercentage() int {
	return m.vatPercentage
}

// Vat returns the per-unit VAT amount.
func (m *MenuItem) Vat() float64 {
	return m.vat
}

// MarkPersisted assigns the storage-generated id. Intended for the persistence
// layer; the id is immutable once set.
func (m *MenuItem) MarkPersisted(id int64) error {
	if m.id != 0 {
		return ErrMenuItemAlreadyPersisted
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("menu item id")
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setItemType(itemType ItemType) error {
	if !itemType.IsValid() {
		return errs.NewValueIsInvalidErrorWithCause("item type",
			fmt.Errorf("%q is not a known menu category", itemType))
	}
	m.itemType = itemType
	return nil
}

func (m *MenuItem) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than 0", price))
	}
	m.price = price
	return nil
}

func (m *MenuItem) setVatPercentage(vatPercentage int) error {
	for _, p := range validVatPercentages {
		if vatPercentage == p {
			m.vatPercentage = vatPercentage
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("vat percentage",
		fmt.Errorf("%d is not one of %v", vatPercentage, validVatPercentages))
}
