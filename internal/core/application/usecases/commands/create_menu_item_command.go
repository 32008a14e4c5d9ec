package commands

import (
	"errors"

	"tavern/internal/core/domain/model/menuitem"
	"tavern/internal/pkg/guard"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
	ErrMenuItemNameIsRequired = errors.New("menu item name is required")
	ErrItemTypeIsInvalid      = errors.New("item type is not a known menu category")
	ErrPriceIsInvalid         = errors.New("price must be greater than 0")
)

// CreateMenuItemCommand represents a request to add an entry to the menu
// catalog. The VAT amount is derived from the price and the bracket by the
// domain; callers never supply it.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	name          string
	itemType      menuitem.ItemType
	price         float64
	vatPercentage int

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a catalog entry. The VAT
// bracket is validated by the domain when the entry is constructed.
func NewCreateMenuItemCommand(name string, itemType menuitem.ItemType, price float64, vatPercentage int) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setItemType(itemType),
		cmd.setPrice(price),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	cmd.vatPercentage = vatPercentage
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// Name returns the catalog entry's display name.
func (c CreateMenuItemCommand) Name() string {
	return c.name
}

// ItemType returns the menu category.
func (c CreateMenuItemCommand) ItemType() menuitem.ItemType {
	return c.itemType
}

// Price returns the unit price.
func (c CreateMenuItemCommand) Price() float64 {
	return c.price
}

// VatPercentage returns the tax bracket.
func (c CreateMenuItemCommand) VatPercentage() int {
	return c.vatPercentage
}

func (c *CreateMenuItemCommand) setName(name string) error {
	if name == "" {
		return ErrMenuItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMenuItemCommand) setItemType(itemType menuitem.ItemType) error {
	if !itemType.IsValid() {
		return ErrItemTypeIsInvalid
	}

	c.itemType = itemType
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price float64) error {
	if price <= 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
