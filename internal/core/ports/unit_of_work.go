package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per business operation,
// keeping concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents one business transaction boundary. Every
// multi-statement mutation runs inside exactly one unit of work; Commit makes
// all effects permanent and applies the staged aggregate enrichments (ids,
// timestamps, snapshots, totals) to the caller's objects, Rollback discards
// both the database effects and the staged enrichments.
type UnitOfWork interface {
	// Begin starts the database transaction.
	Begin(ctx context.Context) error

	// Commit commits the transaction and runs the staged commit hooks.
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction and drops the staged commit hooks.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// EmployeeRepository returns an EmployeeRepository bound to the current
	// transaction.
	EmployeeRepository() EmployeeRepository

	// MenuItemRepository returns a MenuItemRepository bound to the current
	// transaction.
	MenuItemRepository() MenuItemRepository
}
