package queries

import (
	"errors"

	"tavern/internal/pkg/guard"
)

var ErrGetMenuItemsQueryIsNotConstructed = errors.New(
	"GetMenuItemsQuery must be created via NewGetMenuItemsQuery constructor",
)

// GetMenuItemsQuery retrieves the whole menu catalog.
type GetMenuItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuItemsQuery creates a query for the menu catalog.
func NewGetMenuItemsQuery() GetMenuItemsQuery {
	return GetMenuItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemsQueryIsNotConstructed)
}
