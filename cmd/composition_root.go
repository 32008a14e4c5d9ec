package cmd

import (
	"log/slog"

	httpadapter "tavern/internal/adapters/in/http"
	"tavern/internal/adapters/out/postgres"
	"tavern/internal/core/application/services"
	"tavern/internal/core/application/usecases/commands"
	"tavern/internal/core/application/usecases/queries"
	"tavern/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   services.Notifier
	logger     *slog.Logger

	orderService *services.OrderService
}

// NewCompositionRoot wires the application graph. notifier may be nil when no
// broker is configured.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, notifier services.Notifier, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
	root.orderService = root.createOrderService()
	return root
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPayOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddLineItemCommandHandler() commands.AddLineItemCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddLineItemCommandHandler(f)
}

func (c *CompositionRoot) CreateEditLineItemCommandHandler() commands.EditLineItemCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditLineItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveLineItemCommandHandler() commands.RemoveLineItemCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveLineItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateEmployeeCommandHandler() commands.CreateEmployeeCommandHandler {
	var f commands.EmployeeUoWFactory = FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateEmployeeCommandHandler() commands.UpdateEmployeeCommandHandler {
	var f commands.EmployeeUoWFactory = FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteEmployeeCommandHandler() commands.DeleteEmployeeCommandHandler {
	var f commands.EmployeeUoWFactory = FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	var f commands.MenuItemUoWFactory = FuncMenuItemUoWFactory(func() commands.MenuItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	var f commands.MenuItemUoWFactory = FuncMenuItemUoWFactory(func() commands.MenuItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	var f commands.MenuItemUoWFactory = FuncMenuItemUoWFactory(func() commands.MenuItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateGetUnpaidOrdersQueryHandler() queries.GetUnpaidOrdersQueryHandler {
	return queries.NewGetUnpaidOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderLineItemsQueryHandler() queries.GetOrderLineItemsQueryHandler {
	return queries.NewGetOrderLineItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemsQueryHandler() queries.GetMenuItemsQueryHandler {
	return queries.NewGetMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemQueryHandler() queries.GetMenuItemQueryHandler {
	return queries.NewGetMenuItemQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEmployeesQueryHandler() queries.GetEmployeesQueryHandler {
	return queries.NewGetEmployeesQueryHandler(c.gormDB)
}

// OrderService returns the shared working-set service.
func (c *CompositionRoot) OrderService() *services.OrderService {
	return c.orderService
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(refreshSpec string) *jobs.JobManager {
	return jobs.NewJobManager(c.orderService, refreshSpec, c.logger)
}

// CreateHTTPServer wires the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.orderService,
		c.CreateCreateEmployeeCommandHandler(),
		c.CreateUpdateEmployeeCommandHandler(),
		c.CreateDeleteEmployeeCommandHandler(),
		c.CreateCreateMenuItemCommandHandler(),
		c.CreateUpdateMenuItemCommandHandler(),
		c.CreateDeleteMenuItemCommandHandler(),
		c.CreateGetOrderLineItemsQueryHandler(),
		c.CreateGetMenuItemsQueryHandler(),
		c.CreateGetMenuItemQueryHandler(),
		c.CreateGetEmployeesQueryHandler(),
	)
}

func (c *CompositionRoot) createOrderService() *services.OrderService {
	creator := c.CreateCreateOrderCommandHandler()
	updater := c.CreateUpdateOrderCommandHandler()
	deleter := c.CreateDeleteOrderCommandHandler()
	payer := c.CreatePayOrderCommandHandler()
	adder := c.CreateAddLineItemCommandHandler()
	editor := c.CreateEditLineItemCommandHandler()
	remover := c.CreateRemoveLineItemCommandHandler()
	reader := c.CreateGetUnpaidOrdersQueryHandler()

	return services.NewOrderService(services.OrderServiceParams{
		Creator:      &creator,
		Updater:      &updater,
		Deleter:      &deleter,
		Payer:        &payer,
		ItemAdder:    &adder,
		ItemEditor:   &editor,
		ItemRemover:  &remover,
		UnpaidReader: reader,
		Notifier:     c.notifier,
		Logger:       c.logger,
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncEmployeeUoWFactory func() commands.EmployeeUoW

func (f FuncEmployeeUoWFactory) Create() commands.EmployeeUoW {
	return f()
}

type FuncMenuItemUoWFactory func() commands.MenuItemUoW

func (f FuncMenuItemUoWFactory) Create() commands.MenuItemUoW {
	return f()
}
