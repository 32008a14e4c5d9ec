package commands_test

import (
	"testing"

	"tavern/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateEmployeeCommand(t *testing.T) {
	cmd, err := commands.NewCreateEmployeeCommand("Ada", "Lovelace")
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())

	_, err = commands.NewCreateEmployeeCommand("", "Lovelace")
	assert.ErrorIs(t, err, commands.ErrFirstNameIsRequired)

	_, err = commands.NewCreateEmployeeCommand("Ada", "")
	assert.ErrorIs(t, err, commands.ErrLastNameIsRequired)

	var zero commands.CreateEmployeeCommand
	assert.ErrorIs(t, zero.Validate(), commands.ErrCreateEmployeeCommandIsNotConstructed)
}

func TestCreateEmployeeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateEmployeeCommand("Ada", "Lovelace")

	repo := new(MockEmployeeRepository)
	uow := new(MockEmployeeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EmployeeRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*employee.Employee")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEmployeeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateEmployeeCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "Ada", created.FirstName())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
