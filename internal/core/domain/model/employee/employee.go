// Package employee contains the Employee entity. Employees are referenced by
// orders; the order store copies the employee's name onto each order at write
// time so receipts stay accurate after renames.
package employee

import (
	"errors"

	"tavern/internal/pkg/errs"
)

var (
	// ErrEmployeeIsNotConstructed is returned when an Employee instance was not
	// created through the NewEmployee or RestoreEmployee factory functions.
	ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")

	// ErrEmployeeAlreadyPersisted is returned when an id is assigned twice.
	ErrEmployeeAlreadyPersisted = errors.New("employee id is already assigned")
)

// Employee represents a member of staff who can open orders.
type Employee struct {
	id        int64
	firstName string
	lastName  string

	isConstructed bool
}

// NewEmployee creates an unpersisted Employee. Both name parts are required.
func NewEmployee(firstName, lastName string) (*Employee, error) {
	if firstName == "" {
		return nil, errs.NewValueIsRequiredError("first name")
	}
	if lastName == "" {
		return nil, errs.NewValueIsRequiredError("last name")
	}

	return &Employee{
		firstName:     firstName,
		lastName:      lastName,
		isConstructed: true,
	}, nil
}

// RestoreEmployee reconstructs a persisted Employee from storage.
func RestoreEmployee(id int64, firstName, lastName string) (*Employee, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("employee id")
	}

	e, err := NewEmployee(firstName, lastName)
	if err != nil {
		return nil, err
	}
	e.id = id
	return e, nil
}

// Validate ensures the Employee was created through a factory function.
func (e *Employee) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEmployeeIsNotConstructed
	}
	return nil
}

// ID returns the employee's identifier, 0 until persisted.
func (e *Employee) ID() int64 {
	return e.id
}

// IsPersisted reports whether the employee has a storage-assigned id.
func (e *Employee) IsPersisted() bool {
	return e.id > 0
}

// FirstName returns the employee's first name.
func (e *Employee) FirstName() string {
	return e.firstName
}

// LastName returns the employee's last name.
func (e *Employee) LastName() string {
	return e.lastName
}

// MarkPersisted assigns the storage-generated id. Intended for the persistence
// layer; the id is immutable once set.
func (e *Employee) MarkPersisted(id int64) error {
	if e.id != 0 {
		return ErrEmployeeAlreadyPersisted
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("employee id")
	}
	e.id = id
	return nil
}
