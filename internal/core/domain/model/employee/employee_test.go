package employee_test

import (
	"testing"

	"tavern/internal/core/domain/model/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee(t *testing.T) {
	e, err := employee.NewEmployee("Jan", "Novak")
	require.NoError(t, err)
	require.NoError(t, e.Validate())
	assert.False(t, e.IsPersisted())
	assert.Equal(t, "Jan", e.FirstName())
	assert.Equal(t, "Novak", e.LastName())

	_, err = employee.NewEmployee("", "Novak")
	require.Error(t, err)

	_, err = employee.NewEmployee("Jan", "")
	require.Error(t, err)
}

func TestRestoreEmployee(t *testing.T) {
	e, err := employee.RestoreEmployee(1, "Jan", "Novak")
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.ID())

	_, err = employee.RestoreEmployee(0, "Jan", "Novak")
	require.Error(t, err)
}

func TestEmployee_MarkPersisted(t *testing.T) {
	e, err := employee.NewEmployee("Jan", "Novak")
	require.NoError(t, err)

	require.NoError(t, e.MarkPersisted(4))
	assert.Equal(t, int64(4), e.ID())
	require.ErrorIs(t, e.MarkPersisted(5), employee.ErrEmployeeAlreadyPersisted)
}

func TestEmployee_Validate(t *testing.T) {
	var e employee.Employee
	require.ErrorIs(t, e.Validate(), employee.ErrEmployeeIsNotConstructed)
}
