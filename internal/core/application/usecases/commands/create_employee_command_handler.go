package commands

import (
	"context"

	"tavern/internal/core/domain/model/employee"
)

// CreateEmployeeCommandHandler handles staff registration.
type CreateEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewCreateEmployeeCommandHandler creates a handler for staff registration.
func NewCreateEmployeeCommandHandler(uowFactory EmployeeUoWFactory) CreateEmployeeCommandHandler {
	return CreateEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the employee and returns the aggregate carrying its
// generated id.
func (h *CreateEmployeeCommandHandler) Handle(ctx context.Context, cmd CreateEmployeeCommand) (*employee.Employee, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newEmployee, err := employee.NewEmployee(cmd.FirstName(), cmd.LastName())
	if err != nil {
		return nil, err
	}

	if err = uow.EmployeeRepository().Add(ctx, newEmployee); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newEmployee, nil
}
