package queries

import (
	"context"

	"tavern/internal/core/domain/model/employee"

	"gorm.io/gorm"
)

// GetEmployeesQueryHandler reads the registered staff.
type GetEmployeesQueryHandler struct {
	db *gorm.DB
}

// NewGetEmployeesQueryHandler creates a handler for staff queries.
func NewGetEmployeesQueryHandler(db *gorm.DB) GetEmployeesQueryHandler {
	return GetEmployeesQueryHandler{db: db}
}

// Handle returns every employee ordered by id.
func (h GetEmployeesQueryHandler) Handle(
	ctx context.Context,
	query GetEmployeesQuery,
) ([]*employee.Employee, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, first_name, last_name
		FROM employees
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*employee.Employee, 0)
	for rows.Next() {
		var (
			id                  int64
			firstName, lastName string
		)
		if err = rows.Scan(&id, &firstName, &lastName); err != nil {
			return nil, err
		}

		restored, restoreErr := employee.RestoreEmployee(id, firstName, lastName)
		if restoreErr != nil {
			return nil, restoreErr
		}
		employees = append(employees, restored)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
