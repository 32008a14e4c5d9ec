package commands

import (
	"context"

	"tavern/internal/core/domain/model/employee"
)

// UpdateEmployeeCommandHandler handles staff renames. Only future order writes
// see the new name; existing order snapshots stay as written.
type UpdateEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewUpdateEmployeeCommandHandler creates a handler for staff renames.
func NewUpdateEmployeeCommandHandler(uowFactory EmployeeUoWFactory) UpdateEmployeeCommandHandler {
	return UpdateEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the rename.
func (h *UpdateEmployeeCommandHandler) Handle(ctx context.Context, cmd UpdateEmployeeCommand) error {
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

	renamed, err := employee.RestoreEmployee(cmd.EmployeeID(), cmd.FirstName(), cmd.LastName())
	if err != nil {
		return err
	}

	if err = uow.EmployeeRepository().Update(ctx, renamed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
