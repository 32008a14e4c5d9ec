package commands_test

import (
	"testing"

	"tavern/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderCommand(1, 7, "Table 4", []commands.LineItemSpec{
			{LineItemID: 10, Quantity: 5},
			{MenuItemID: 3, Quantity: 1},
		})
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, int64(1), cmd.OrderID())
		assert.Len(t, cmd.Items(), 2)
	})

	t.Run("empty desired set is valid", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderCommand(1, 7, "Table 4", nil)
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
	})

	t.Run("invalid order id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(0, 7, "Table 4", nil)
		assert.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
	})

	t.Run("new position without catalog reference", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(1, 7, "Table 4", []commands.LineItemSpec{
			{LineItemID: 0, MenuItemID: 0, Quantity: 1},
		})
		assert.ErrorIs(t, err, commands.ErrMenuItemIDIsInvalid)
	})

	t.Run("invalid quantity", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(1, 7, "Table 4", []commands.LineItemSpec{
			{LineItemID: 10, Quantity: 0},
		})
		assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.UpdateOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderCommandIsNotConstructed)
	})
}
