package queries

import (
	"errors"

	"tavern/internal/pkg/guard"
)

var (
	ErrGetMenuItemQueryIsNotConstructed = errors.New(
		"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
	)
	ErrMenuItemIDIsInvalid = errors.New("menu item id must be greater than 0")
)

// GetMenuItemQuery retrieves a single catalog entry by id.
type GetMenuItemQuery struct {
	menuItemID int64

	guard guard.ConstructorGuard
}

// NewGetMenuItemQuery creates a query for one catalog entry.
func NewGetMenuItemQuery(menuItemID int64) (GetMenuItemQuery, error) {
	if menuItemID <= 0 {
		return GetMenuItemQuery{}, ErrMenuItemIDIsInvalid
	}

	return GetMenuItemQuery{
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

// MenuItemID returns the id of the requested entry.
func (q GetMenuItemQuery) MenuItemID() int64 {
	return q.menuItemID
}
