package queries_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "tavern/internal/adapters/out/postgres"
	"tavern/internal/core/application/usecases/queries"
	"tavern/internal/core/domain/model/employee"
	"tavern/internal/core/domain/model/menuitem"
	"tavern/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetUnpaidOrdersQueryHandlerIntegrationTestSuite verifies the unpaid_orders
// read model against a PostgreSQL container.
type GetUnpaidOrdersQueryHandlerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgresadapter.GormUnitOfWorkFactory
	handler   queries.GetUnpaidOrdersQueryHandler

	waiter *employee.Employee
	beer   *menuitem.MenuItem
}

func (suite *GetUnpaidOrdersQueryHandlerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgresadapter.Migrate(db))
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
	suite.handler = queries.NewGetUnpaidOrdersQueryHandler(db)
}

func (suite *GetUnpaidOrdersQueryHandlerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE order_items, orders, menu_items, employees RESTART IDENTITY CASCADE").Error)

	waiter, err := employee.NewEmployee("Ada", "Lovelace")
	suite.Require().NoError(err)
	beer, err := menuitem.NewMenuItem("Pilsner", menuitem.Beverage, 4.5, 21)
	suite.Require().NoError(err)

	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.EmployeeRepository().Add(ctx, waiter))
	suite.Require().NoError(uow.MenuItemRepository().Add(ctx, beer))
	suite.Require().NoError(uow.Commit(ctx))

	suite.waiter = waiter
	suite.beer = beer
}

func (suite *GetUnpaidOrdersQueryHandlerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetUnpaidOrdersQueryHandlerIntegrationTestSuite) TestHandle_NoOrders_ReturnsEmptySlice() {
	unpaid, err := suite.handler.Handle(context.Background(), queries.NewGetUnpaidOrdersQuery())
	suite.Require().NoError(err)
	suite.Empty(unpaid)
}

func (suite *GetUnpaidOrdersQueryHandlerIntegrationTestSuite) TestHandle_ReturnsOnlyUnpaidOrdersWithItems() {
	ctx := context.Background()

	open := suite.createOrder("Table 1", 2)
	settled := suite.createOrder("Table 2", 1)
	empty := suite.createOrder("Table 3", 0)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().SetPaid(ctx, settled.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	unpaid, err := suite.handler.Handle(ctx, queries.NewGetUnpaidOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(unpaid, 2)

	// Ordered by id; the settled order is absent.
	suite.Equal(open.ID(), unpaid[0].ID())
	suite.Equal(empty.ID(), unpaid[1].ID())

	first := unpaid[0]
	suite.Equal("Table 1", first.Name())
	suite.Equal("Ada", first.EmployeeFirstName())
	suite.Equal("Lovelace", first.EmployeeLastName())
	suite.False(first.IsPaid())
	suite.Require().Len(first.LineItems(), 1)
	suite.Equal(2, first.LineItems()[0].Quantity())
	suite.InDelta(9.0, first.TotalPrice(), 0.0001)
	suite.InDelta(1.89, first.TotalVat(), 0.0001)

	// Orders without positions come back with zero totals, not missing.
	suite.Empty(unpaid[1].LineItems())
	suite.InDelta(0.0, unpaid[1].TotalPrice(), 0.0001)
}

func (suite *GetUnpaidOrdersQueryHandlerIntegrationTestSuite) TestHandle_UnconstructedQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetUnpaidOrdersQuery{})
	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetUnpaidOrdersQueryIsNotConstructed)
}

// createOrder persists an order with the given beer quantity, or no positions
// when quantity is 0.
func (suite *GetUnpaidOrdersQueryHandlerIntegrationTestSuite) createOrder(name string, quantity int) *order.Order {
	ctx := context.Background()

	testOrder, err := order.NewOrder(suite.waiter.ID(), name)
	suite.Require().NoError(err)
	if quantity > 0 {
		item, itemErr := order.NewLineItem(suite.beer, quantity)
		suite.Require().NoError(itemErr)
		suite.Require().NoError(testOrder.AddLineItem(item))
	}

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))
	return testOrder
}

func TestGetUnpaidOrdersQueryHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(GetUnpaidOrdersQueryHandlerIntegrationTestSuite))
}
