package commands

import (
	"errors"

	"tavern/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand represents a request to remove a catalog entry.
// Fails with a constraint violation while stored positions still reference it.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID int64

	guard guard.ConstructorGuard
}

// NewDeleteMenuItemCommand creates a command to remove a catalog entry.
func NewDeleteMenuItemCommand(menuItemID int64) (DeleteMenuItemCommand, error) {
	cmd := DeleteMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMenuItemID(menuItemID); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the id of the entry to remove.
func (c DeleteMenuItemCommand) MenuItemID() int64 {
	return c.menuItemID
}

func (c *DeleteMenuItemCommand) setMenuItemID(menuItemID int64) error {
	if menuItemID <= 0 {
		return ErrMenuItemIDIsInvalid
	}

	c.menuItemID = menuItemID
	return nil
}
