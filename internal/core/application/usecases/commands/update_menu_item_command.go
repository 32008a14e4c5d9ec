package commands

import (
	"errors"

	"tavern/internal/core/domain/model/menuitem"
	"tavern/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a request to rewrite a catalog entry.
// Positions written before the change keep their frozen snapshot.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID    int64
	name          string
	itemType      menuitem.ItemType
	price         float64
	vatPercentage int

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to rewrite a catalog entry.
func NewUpdateMenuItemCommand(menuItemID int64, name string, itemType menuitem.ItemType, price float64, vatPercentage int) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setName(name),
		cmd.setItemType(itemType),
		cmd.setPrice(price),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	cmd.vatPercentage = vatPercentage
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the id of the entry being rewritten.
func (c UpdateMenuItemCommand) MenuItemID() int64 {
	return c.menuItemID
}

// Name returns the new display name.
func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

// ItemType returns the new menu category.
func (c UpdateMenuItemCommand) ItemType() menuitem.ItemType {
	return c.itemType
}

// Price returns the new unit price.
func (c UpdateMenuItemCommand) Price() float64 {
	return c.price
}

// VatPercentage returns the new tax bracket.
func (c UpdateMenuItemCommand) VatPercentage() int {
	return c.vatPercentage
}

func (c *UpdateMenuItemCommand) setMenuItemID(menuItemID int64) error {
	if menuItemID <= 0 {
		return ErrMenuItemIDIsInvalid
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *UpdateMenuItemCommand) setName(name string) error {
	if name == "" {
		return ErrMenuItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateMenuItemCommand) setItemType(itemType menuitem.ItemType) error {
	if !itemType.IsValid() {
		return ErrItemTypeIsInvalid
	}

	c.itemType = itemType
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(price float64) error {
	if price <= 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
