package commands

import (
	"errors"

	"tavern/internal/pkg/guard"
)

var (
	ErrEditLineItemCommandIsNotConstructed = errors.New(
		"EditLineItemCommand must be created via NewEditLineItemCommand constructor",
	)
	ErrLineItemIDIsInvalid = errors.New("line item id must be greater than 0")
)

// EditLineItemCommand represents a request to change the quantity of one
// stored position. Quantity is the only attribute an edit may change; the
// frozen snapshot and the catalog reference stay as written.
type EditLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	lineItemID int64
	quantity   int

	guard guard.ConstructorGuard
}

// NewEditLineItemCommand creates a command to change a position's quantity.
func NewEditLineItemCommand(orderID, lineItemID int64, quantity int) (EditLineItemCommand, error) {
	cmd := EditLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineItemID(lineItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return EditLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditLineItemCommand) Validate() error {
	return c.guard.Validate(ErrEditLineItemCommandIsNotConstructed)
}

// OrderID returns the id of the order owning the position.
func (c EditLineItemCommand) OrderID() int64 {
	return c.orderID
}

// LineItemID returns the id of the position being edited.
func (c EditLineItemCommand) LineItemID() int64 {
	return c.lineItemID
}

// Quantity returns the new quantity.
func (c EditLineItemCommand) Quantity() int {
	return c.quantity
}

func (c *EditLineItemCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *EditLineItemCommand) setLineItemID(lineItemID int64) error {
	if lineItemID <= 0 {
		return ErrLineItemIDIsInvalid
	}

	c.lineItemID = lineItemID
	return nil
}

func (c *EditLineItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
