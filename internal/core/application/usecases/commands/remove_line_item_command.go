package commands

import (
	"errors"

	"tavern/internal/pkg/guard"
)

var ErrRemoveLineItemCommandIsNotConstructed = errors.New(
	"RemoveLineItemCommand must be created via NewRemoveLineItemCommand constructor",
)

// RemoveLineItemCommand represents a request to drop one stored position from
// an order. Removing a position that is already gone succeeds.
type RemoveLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	lineItemID int64

	guard guard.ConstructorGuard
}

// NewRemoveLineItemCommand creates a command to drop a position.
func NewRemoveLineItemCommand(orderID, lineItemID int64) (RemoveLineItemCommand, error) {
	cmd := RemoveLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RemoveLineItemCommand{}, err
	}
	if err := cmd.setLineItemID(lineItemID); err != nil {
		return RemoveLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveLineItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLineItemCommandIsNotConstructed)
}

// OrderID returns the id of the order the position belongs to.
func (c RemoveLineItemCommand) OrderID() int64 {
	return c.orderID
}

// LineItemID returns the id of the position to drop.
func (c RemoveLineItemCommand) LineItemID() int64 {
	return c.lineItemID
}

func (c *RemoveLineItemCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveLineItemCommand) setLineItemID(lineItemID int64) error {
	if lineItemID <= 0 {
		return ErrLineItemIDIsInvalid
	}

	c.lineItemID = lineItemID
	return nil
}
