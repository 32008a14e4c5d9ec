package commands

import (
	"errors"

	"tavern/internal/pkg/guard"
)

var ErrDeleteEmployeeCommandIsNotConstructed = errors.New(
	"DeleteEmployeeCommand must be created via NewDeleteEmployeeCommand constructor",
)

// DeleteEmployeeCommand represents a request to remove a member of staff.
// Fails with a constraint violation while orders still reference the employee.
type DeleteEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID int64

	guard guard.ConstructorGuard
}

// NewDeleteEmployeeCommand creates a command to remove an employee.
func NewDeleteEmployeeCommand(employeeID int64) (DeleteEmployeeCommand, error) {
	cmd := DeleteEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setEmployeeID(employeeID); err != nil {
		return DeleteEmployeeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the id of the employee to remove.
func (c DeleteEmployeeCommand) EmployeeID() int64 {
	return c.employeeID
}

func (c *DeleteEmployeeCommand) setEmployeeID(employeeID int64) error {
	if employeeID <= 0 {
		return ErrEmployeeIDIsInvalid
	}

	c.employeeID = employeeID
	return nil
}
