package queries_test

import (
	"testing"

	"tavern/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUnpaidOrdersQuery_Validate(t *testing.T) {
	q := queries.NewGetUnpaidOrdersQuery()
	assert.NoError(t, q.Validate())

	var zero queries.GetUnpaidOrdersQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetUnpaidOrdersQueryIsNotConstructed)
}

func TestNewGetOrderLineItemsQuery(t *testing.T) {
	q, err := queries.NewGetOrderLineItemsQuery(1)
	require.NoError(t, err)
	assert.NoError(t, q.Validate())
	assert.Equal(t, int64(1), q.OrderID())

	_, err = queries.NewGetOrderLineItemsQuery(0)
	assert.ErrorIs(t, err, queries.ErrOrderIDIsInvalid)

	var zero queries.GetOrderLineItemsQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetOrderLineItemsQueryIsNotConstructed)
}

func TestNewGetMenuItemQuery(t *testing.T) {
	q, err := queries.NewGetMenuItemQuery(3)
	require.NoError(t, err)
	assert.NoError(t, q.Validate())
	assert.Equal(t, int64(3), q.MenuItemID())

	_, err = queries.NewGetMenuItemQuery(-1)
	assert.ErrorIs(t, err, queries.ErrMenuItemIDIsInvalid)
}

func TestGetMenuItemsQuery_Validate(t *testing.T) {
	q := queries.NewGetMenuItemsQuery()
	assert.NoError(t, q.Validate())

	var zero queries.GetMenuItemsQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetMenuItemsQueryIsNotConstructed)
}

func TestGetEmployeesQuery_Validate(t *testing.T) {
	q := queries.NewGetEmployeesQuery()
	assert.NoError(t, q.Validate())

	var zero queries.GetEmployeesQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetEmployeesQueryIsNotConstructed)
}
