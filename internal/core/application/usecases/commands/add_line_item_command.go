package commands

import (
	"errors"

	"tavern/internal/pkg/guard"
)

var ErrAddLineItemCommandIsNotConstructed = errors.New(
	"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
)

// AddLineItemCommand represents a request to append one position to an
// existing order without replacing the rest of its collection.
type AddLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	menuItemID int64
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddLineItemCommand creates a command to append a position to an order.
func NewAddLineItemCommand(orderID, menuItemID int64, quantity int) (AddLineItemCommand, error) {
	cmd := AddLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMenuItemID(menuItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

// OrderID returns the id of the order receiving the position.
func (c AddLineItemCommand) OrderID() int64 {
	return c.orderID
}

// MenuItemID returns the catalog entry to snapshot.
func (c AddLineItemCommand) MenuItemID() int64 {
	return c.menuItemID
}

// Quantity returns how many units are ordered.
func (c AddLineItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddLineItemCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *AddLineItemCommand) setMenuItemID(menuItemID int64) error {
	if menuItemID <= 0 {
		return ErrMenuItemIDIsInvalid
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *AddLineItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
