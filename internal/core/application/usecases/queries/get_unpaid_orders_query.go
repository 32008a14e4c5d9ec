// Package queries contains read operations in the CQRS architecture. Query
// handlers read the database directly, bypassing the repositories, and restore
// domain entities from the stored rows so callers can keep working with them.
package queries

import (
	"errors"

	"tavern/internal/pkg/guard"
)

var ErrGetUnpaidOrdersQueryIsNotConstructed = errors.New(
	"GetUnpaidOrdersQuery must be created via NewGetUnpaidOrdersQuery constructor",
)

// GetUnpaidOrdersQuery retrieves every order that has not been settled yet,
// with totals precomputed by the unpaid_orders view.
//
// Example:
//
//	query := NewGetUnpaidOrdersQuery()
//	handler := NewGetUnpaidOrdersQueryHandler(db)
//
//	unpaid, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get unpaid orders: %w", err)
//	}
//	fmt.Printf("%d orders open\n", len(unpaid))
type GetUnpaidOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnpaidOrdersQuery creates a query for the unpaid working set.
func NewGetUnpaidOrdersQuery() GetUnpaidOrdersQuery {
	return GetUnpaidOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnpaidOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnpaidOrdersQueryIsNotConstructed)
}
