package queries

import (
	"errors"

	"tavern/internal/pkg/guard"
)

var ErrGetEmployeesQueryIsNotConstructed = errors.New(
	"GetEmployeesQuery must be created via NewGetEmployeesQuery constructor",
)

// GetEmployeesQuery retrieves the registered staff.
type GetEmployeesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEmployeesQuery creates a query for the staff list.
func NewGetEmployeesQuery() GetEmployeesQuery {
	return GetEmployeesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetEmployeesQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeesQueryIsNotConstructed)
}
