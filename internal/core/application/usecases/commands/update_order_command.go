package commands

import (
	"errors"

	"tavern/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// LineItemSpec describes one desired position of a full-replace order update.
// LineItemID identifies an existing position to keep (its quantity may
// change); a zero LineItemID requests a new position composed from
// MenuItemID. Stored positions absent from the desired set are removed.
type LineItemSpec struct {
	LineItemID int64
	MenuItemID int64
	Quantity   int
}

// UpdateOrderCommand represents a full-replace update: the desired state of an
// order's header and its complete set of positions. The stored state is
// reconciled against it atomically.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	employeeID int64
	name       string
	items      []LineItemSpec

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command carrying the desired order state.
func NewUpdateOrderCommand(orderID, employeeID int64, name string, items []LineItemSpec) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEmployeeID(employeeID),
		cmd.setName(name),
		cmd.setItems(items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order being replaced.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// EmployeeID returns the id of the employee the order should belong to.
func (c UpdateOrderCommand) EmployeeID() int64 {
	return c.employeeID
}

// Name returns the desired order label.
func (c UpdateOrderCommand) Name() string {
	return c.name
}

// Items returns the complete desired set of positions.
func (c UpdateOrderCommand) Items() []LineItemSpec {
	return c.items
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setEmployeeID(employeeID int64) error {
	if employeeID <= 0 {
		return ErrEmployeeIDIsInvalid
	}

	c.employeeID = employeeID
	return nil
}

func (c *UpdateOrderCommand) setName(name string) error {
	if name == "" {
		return ErrOrderNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateOrderCommand) setItems(items []LineItemSpec) error {
	for _, item := range items {
		if item.LineItemID == 0 && item.MenuItemID <= 0 {
			return ErrMenuItemIDIsInvalid
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.items = items
	return nil
}
