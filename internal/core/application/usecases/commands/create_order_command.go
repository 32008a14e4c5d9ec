package commands

import (
	"errors"

	"tavern/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrEmployeeIDIsInvalid = errors.New("employee id must be greater than 0")
	ErrOrderNameIsRequired = errors.New("order name is required")
	ErrMenuItemIDIsInvalid = errors.New("menu item id must be greater than 0")
	ErrQuantityIsInvalid   = errors.New("quantity must be greater than 0")
)

// OrderItemSpec describes one requested position when composing an order:
// which catalog entry and how many units.
type OrderItemSpec struct {
	MenuItemID int64
	Quantity   int
}

// CreateOrderCommand represents a request to open a new order for an employee,
// optionally pre-filled with positions from the menu catalog.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(employeeID, "Table 4", []OrderItemSpec{
//	    {MenuItemID: beerID, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	employeeID int64
	name       string
	items      []OrderItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// Validates the employee reference, the order name and every item spec.
func NewCreateOrderCommand(employeeID int64, name string, items []OrderItemSpec) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmployeeID(employeeID),
		cmd.setName(name),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// EmployeeID returns the id of the employee opening the order.
func (c CreateOrderCommand) EmployeeID() int64 {
	return c.employeeID
}

// Name returns the order's label.
func (c CreateOrderCommand) Name() string {
	return c.name
}

// Items returns the requested positions.
func (c CreateOrderCommand) Items() []OrderItemSpec {
	return c.items
}

func (c *CreateOrderCommand) setEmployeeID(employeeID int64) error {
	if employeeID <= 0 {
		return ErrEmployeeIDIsInvalid
	}

	c.employeeID = employeeID
	return nil
}

func (c *CreateOrderCommand) setName(name string) error {
	if name == "" {
		return ErrOrderNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemSpec) error {
	for _, item := range items {
		if item.MenuItemID <= 0 {
			return ErrMenuItemIDIsInvalid
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.items = items
	return nil
}
