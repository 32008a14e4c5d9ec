package commands

import (
	"errors"

	"tavern/internal/pkg/guard"
)

var ErrUpdateEmployeeCommandIsNotConstructed = errors.New(
	"UpdateEmployeeCommand must be created via NewUpdateEmployeeCommand constructor",
)

// UpdateEmployeeCommand represents a request to rename a member of staff.
// Orders written before the rename keep the name they were stamped with.
type UpdateEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID int64
	firstName  string
	lastName   string

	guard guard.ConstructorGuard
}

// NewUpdateEmployeeCommand creates a command to rename an employee.
func NewUpdateEmployeeCommand(employeeID int64, firstName, lastName string) (UpdateEmployeeCommand, error) {
	cmd := UpdateEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmployeeID(employeeID),
		cmd.setFirstName(firstName),
		cmd.setLastName(lastName),
	); err != nil {
		return UpdateEmployeeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the id of the employee being renamed.
func (c UpdateEmployeeCommand) EmployeeID() int64 {
	return c.employeeID
}

// FirstName returns the new first name.
func (c UpdateEmployeeCommand) FirstName() string {
	return c.firstName
}

// LastName returns the new last name.
func (c UpdateEmployeeCommand) LastName() string {
	return c.lastName
}

func (c *UpdateEmployeeCommand) setEmployeeID(employeeID int64) error {
	if employeeID <= 0 {
		return ErrEmployeeIDIsInvalid
	}

	c.employeeID = employeeID
	return nil
}

func (c *UpdateEmployeeCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *UpdateEmployeeCommand) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}
