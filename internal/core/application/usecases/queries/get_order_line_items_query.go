package queries

import (
	"errors"

	"tavern/internal/pkg/guard"
)

var (
	ErrGetOrderLineItemsQueryIsNotConstructed = errors.New(
		"GetOrderLineItemsQuery must be created via NewGetOrderLineItemsQuery constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// GetOrderLineItemsQuery retrieves the stored positions of one order, frozen
// snapshots included.
type GetOrderLineItemsQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderLineItemsQuery creates a query for one order's positions.
func NewGetOrderLineItemsQuery(orderID int64) (GetOrderLineItemsQuery, error) {
	if orderID <= 0 {
		return GetOrderLineItemsQuery{}, ErrOrderIDIsInvalid
	}

	return GetOrderLineItemsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderLineItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLineItemsQueryIsNotConstructed)
}

// OrderID returns the id of the order whose positions are requested.
func (q GetOrderLineItemsQuery) OrderID() int64 {
	return q.orderID
}
