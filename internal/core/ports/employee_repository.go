package ports

import (
	"context"

	"tavern/internal/core/domain/model/employee"
)

// EmployeeRepository defines the persistence contract for employees.
type EmployeeRepository interface {
	// Add persists a new employee; the generated id is applied on commit.
	Add(ctx context.Context, aggregate *employee.Employee) error

	// Update persists changes to an existing employee. Orders written earlier
	// keep their name snapshot; only future writes see the new name.
	Update(ctx context.Context, aggregate *employee.Employee) error

	// Get retrieves an employee by id.
	Get(ctx context.Context, id int64) (*employee.Employee, error)

	// Delete removes an employee. Fails with a constraint violation while
	// orders still reference the employee.
	Delete(ctx context.Context, id int64) error
}
