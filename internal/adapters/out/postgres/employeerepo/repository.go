package employeerepo

import (
	"context"
	"errors"

	"tavern/internal/adapters/out/postgres/pgerr"
	"tavern/internal/core/domain/model/employee"
	"tavern/internal/pkg/errs"

	"gorm.io/gorm"
)

type commitTracker interface {
	TrackCommit(hook func())
}

// GormEmployeeRepository implements ports.EmployeeRepository. The generated id
// is applied to the aggregate through a commit hook so a rolled-back write
// leaves the aggregate unpersisted.
type GormEmployeeRepository struct {
	db      *gorm.DB
	tracker commitTracker
}

// NewGormEmployeeRepository creates a new GORM employee repository.
func NewGormEmployeeRepository(db *gorm.DB, tracker commitTracker) *GormEmployeeRepository {
	return &GormEmployeeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new employee.
func (r *GormEmployeeRepository) Add(ctx context.Context, aggregate *employee.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.IsPersisted() {
		return employee.ErrEmployeeAlreadyPersisted
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("employee create", err)
	}

	r.tracker.TrackCommit(func() {
		_ = aggregate.MarkPersisted(dto.ID)
	})
	return nil
}

// Update rewrites an existing employee's name. Orders written earlier keep
// their snapshot; the order store re-reads the name on its next write.
func (r *GormEmployeeRepository) Update(ctx context.Context, aggregate *employee.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.IsPersisted() {
		return errs.NewValueIsRequiredError("employee id")
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&EmployeeDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"first_name": dto.FirstName, "last_name": dto.LastName})
	if result.Error != nil {
		return pgerr.Classify("employee update", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("employeeId", dto.ID)
	}
	return nil
}

// Get retrieves an employee by id.
func (r *GormEmployeeRepository) Get(ctx context.Context, id int64) (*employee.Employee, error) {
	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).First(&dto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employeeId", id)
		}
		return nil, pgerr.Classify("employee get", err)
	}
	return toDomain(dto)
}

// Delete removes an employee. While orders still reference the employee the
// foreign key rejects the delete and a constraint violation is returned.
func (r *GormEmployeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&EmployeeDTO{}, id)
	if result.Error != nil {
		return pgerr.Classify("employee delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("employeeId", id)
	}
	return nil
}

func fromDomain(aggregate *employee.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:        aggregate.ID(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
	}
}

func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	return employee.RestoreEmployee(dto.ID, dto.FirstName, dto.LastName)
}
