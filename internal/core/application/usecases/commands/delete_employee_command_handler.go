package commands

import (
	"context"
)

// DeleteEmployeeCommandHandler handles staff removal.
type DeleteEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewDeleteEmployeeCommandHandler creates a handler for staff removal.
func NewDeleteEmployeeCommandHandler(uowFactory EmployeeUoWFactory) DeleteEmployeeCommandHandler {
	return DeleteEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the employee. The foreign key on orders rejects the removal
// while recorded orders still reference the employee.
func (h *DeleteEmployeeCommandHandler) Handle(ctx context.Context, cmd DeleteEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.EmployeeRepository().Delete(ctx, cmd.EmployeeID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
