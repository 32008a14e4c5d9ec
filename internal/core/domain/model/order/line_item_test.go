package order_test

import (
	"testing"

	"tavern/internal/core/domain/model/menuitem"
	"tavern/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	t.Run("copies menu item snapshot at construction", func(t *testing.T) {
		m := testMenuItem(t)

		li, err := order.NewLineItem(m, 2)

		require.NoError(t, err)
		require.NoError(t, li.Validate())
		assert.Equal(t, int64(0), li.ID())
		assert.Equal(t, m.ID(), li.MenuItemID())
		assert.Equal(t, "Goulash", li.ItemName())
		assert.Equal(t, menuitem.Main, li.ItemType())
		assert.InDelta(t, 12.50, li.ItemPrice(), 1e-9)
		assert.Equal(t, 21, li.VatPercentage())
		assert.InDelta(t, 2.625, li.ItemVat(), 1e-9)
		assert.Equal(t, 2, li.Quantity())
	})

	t.Run("rejects unpersisted menu item", func(t *testing.T) {
		m, err := menuitem.NewMenuItem("Goulash", menuitem.Main, 12.50, 21)
		require.NoError(t, err)

		li, err := order.NewLineItem(m, 2)

		require.ErrorIs(t, err, order.ErrMenuItemNotPersisted)
		assert.Nil(t, li)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		li, err := order.NewLineItem(testMenuItem(t), 0)

		require.Error(t, err)
		assert.Nil(t, li)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})
}

func TestLineItem_SetQuantity(t *testing.T) {
	li, err := order.NewLineItem(testMenuItem(t), 2)
	require.NoError(t, err)

	require.NoError(t, li.SetQuantity(5))
	assert.Equal(t, 5, li.Quantity())

	require.Error(t, li.SetQuantity(-1))
	assert.Equal(t, 5, li.Quantity())
}

func TestLineItem_MarkPersisted(t *testing.T) {
	t.Run("assigns id and order id", func(t *testing.T) {
		li, err := order.NewLineItem(testMenuItem(t), 2)
		require.NoError(t, err)

		require.NoError(t, li.MarkPersisted(3, 7))
		assert.Equal(t, int64(3), li.ID())
		assert.Equal(t, int64(7), li.OrderID())
	})

	t.Run("identity is immutable", func(t *testing.T) {
		li, err := order.RestoreLineItem(3, 7, 10, "Goulash", menuitem.Main, 12.50, 21, 2.625, 2, 25, 5.25)
		require.NoError(t, err)

		require.ErrorIs(t, li.MarkPersisted(4, 7), order.ErrLineItemAlreadyPersisted)
	})
}

func TestRestoreLineItem(t *testing.T) {
	t.Run("keeps stored snapshot and totals", func(t *testing.T) {
		li, err := order.RestoreLineItem(3, 7, 10, "Goulash", menuitem.Main, 12.50, 21, 2.625, 2, 25, 5.25)

		require.NoError(t, err)
		assert.Equal(t, int64(3), li.ID())
		assert.Equal(t, int64(7), li.OrderID())
		assert.InDelta(t, 25.0, li.TotalPrice(), 1e-9)
		assert.InDelta(t, 5.25, li.TotalVat(), 1e-9)
	})

	t.Run("rejects invalid identity", func(t *testing.T) {
		_, err := order.RestoreLineItem(0, 7, 10, "Goulash", menuitem.Main, 12.50, 21, 2.625, 2, 25, 5.25)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var li order.LineItem
		require.ErrorIs(t, li.Validate(), order.ErrLineItemIsNotConstructed)
	})
}
