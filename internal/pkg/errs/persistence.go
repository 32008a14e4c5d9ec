package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrConstraintViolation is the sentinel for permanent referential-integrity
	// failures. Retrying the same operation will fail again.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrTransient is the sentinel for connectivity failures. The whole logical
	// operation is safe to retry: the transaction it ran in was rolled back.
	ErrTransient = errors.New("storage temporarily unavailable")

	// ErrPersistence is the sentinel for storage failures that are neither
	// constraint violations nor transient.
	ErrPersistence = errors.New("persistence failed")
)

// ConstraintViolationError reports a violated database relationship.
// Relation names the foreign key or constraint that failed.
type ConstraintViolationError struct {
	Relation string
	Cause    error
}

// NewConstraintViolationError creates a ConstraintViolationError without a cause.
func NewConstraintViolationError(relation string) *ConstraintViolationError {
	return &ConstraintViolationError{Relation: relation}
}

// NewConstraintViolationErrorWithCause creates a ConstraintViolationError wrapping cause.
func NewConstraintViolationErrorWithCause(relation string, cause error) *ConstraintViolationError {
	return &ConstraintViolationError{Relation: relation, Cause: cause}
}

func (e *ConstraintViolationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrConstraintViolation, e.Relation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConstraintViolation, e.Relation))
}

func (e *ConstraintViolationError) Unwrap() error {
	return ErrConstraintViolation
}

// TransientError reports a lost connection or other temporary storage failure
// during the named operation.
type TransientError struct {
	Op    string
	Cause error
}

// NewTransientError creates a TransientError wrapping cause.
func NewTransientError(op string, cause error) *TransientError {
	return &TransientError{Op: op, Cause: cause}
}

func (e *TransientError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrTransient, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrTransient, e.Op))
}

func (e *TransientError) Unwrap() error {
	return ErrTransient
}

// PersistenceError reports an unclassified storage failure during the named
// operation, preserving the original cause.
type PersistenceError struct {
	Op    string
	Cause error
}

// NewPersistenceError creates a PersistenceError wrapping cause.
func NewPersistenceError(op string, cause error) *PersistenceError {
	return &PersistenceError{Op: op, Cause: cause}
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrPersistence, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPersistence, e.Op))
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistence
}
