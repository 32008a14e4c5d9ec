// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern for the tavern stores.
//
// Every multi-statement mutation (order create, full-replace update, delete)
// runs inside exactly one unit of work. Repositories obtained from the unit of
// work are bound to its transaction and never mutate the caller's aggregates
// directly: generated ids, server timestamps, snapshot fields and recomputed
// totals are staged as commit hooks and applied only when Commit succeeds.
// Rollback discards both the database effects and the staged hooks, leaving
// the caller's aggregates exactly as they were before the operation: an
// order whose create failed still has id 0, signalling "not persisted".
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each unit of work instance is single-use and not safe for concurrent use;
// create a fresh one per business operation.
package postgres

import (
	"context"

	"tavern/internal/adapters/out/postgres/employeerepo"
	"tavern/internal/adapters/out/postgres/menuitemrepo"
	"tavern/internal/adapters/out/postgres/orderrepo"
	"tavern/internal/adapters/out/postgres/pgerr"
	"tavern/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. The pool is constructed once at process start and passed
// in explicitly; there is no ambient global connection state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory over the given connection pool.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork with its own transaction state and an
// empty set of commit hooks.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction and the commit hooks
// staged by the repositories bound to it.
type GormUnitOfWork struct {
	db          *gorm.DB
	tx          *gorm.DB
	commitHooks []func()
}

// Begin starts the transaction. Calling Begin again on an active unit of work
// is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return pgerr.Classify("begin transaction", err)
	}
	return nil
}

// Commit commits the transaction and, only on success, runs the staged commit
// hooks in registration order, enriching the caller's aggregates with the
// generated ids, timestamps, snapshots and totals.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.commitHooks = nil
		return pgerr.Classify("commit transaction", err)
	}

	for _, hook := range uow.commitHooks {
		hook()
	}
	uow.commitHooks = nil
	return nil
}

// Rollback discards the transaction and drops the staged commit hooks. Safe
// to call after Commit; it then does nothing. This makes `defer Rollback`
// the standard cleanup in handlers.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.commitHooks = nil
	if err != nil {
		return pgerr.Classify("rollback transaction", err)
	}
	return nil
}

// OrderRepository returns an OrderRepository bound to the current transaction,
// or to the plain connection when no transaction is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// EmployeeRepository returns an EmployeeRepository bound to the current
// transaction, or to the plain connection when no transaction is active.
func (uow *GormUnitOfWork) EmployeeRepository() ports.EmployeeRepository {
	return employeerepo.NewGormEmployeeRepository(uow.conn(), uow)
}

// MenuItemRepository returns a MenuItemRepository bound to the current
// transaction, or to the plain connection when no transaction is active.
func (uow *GormUnitOfWork) MenuItemRepository() ports.MenuItemRepository {
	return menuitemrepo.NewGormMenuItemRepository(uow.conn(), uow)
}

// TrackCommit stages a hook to run after a successful Commit. Repositories use
// this to defer aggregate enrichment until the transaction outcome is known.
func (uow *GormUnitOfWork) TrackCommit(hook func()) {
	uow.commitHooks = append(uow.commitHooks, hook)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
