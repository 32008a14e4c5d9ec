package commands

import (
	"errors"

	"tavern/internal/pkg/guard"
)

var (
	ErrCreateEmployeeCommandIsNotConstructed = errors.New(
		"CreateEmployeeCommand must be created via NewCreateEmployeeCommand constructor",
	)
	ErrFirstNameIsRequired = errors.New("first name is required")
	ErrLastNameIsRequired  = errors.New("last name is required")
)

// CreateEmployeeCommand represents a request to register a member of staff.
type CreateEmployeeCommand struct { //nolint:recvcheck //using for validation
	firstName string
	lastName  string

	guard guard.ConstructorGuard
}

// NewCreateEmployeeCommand creates a command to register an employee.
func NewCreateEmployeeCommand(firstName, lastName string) (CreateEmployeeCommand, error) {
	cmd := CreateEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFirstName(firstName),
		cmd.setLastName(lastName),
	); err != nil {
		return CreateEmployeeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateEmployeeCommandIsNotConstructed)
}

// FirstName returns the employee's first name.
func (c CreateEmployeeCommand) FirstName() string {
	return c.firstName
}

// LastName returns the employee's last name.
func (c CreateEmployeeCommand) LastName() string {
	return c.lastName
}

func (c *CreateEmployeeCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *CreateEmployeeCommand) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}
