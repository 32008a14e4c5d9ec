// Package http exposes the tavern operations over a JSON API built on echo.
// Handlers translate requests into commands and queries; order writes go
// through the OrderService so the unpaid working set stays consistent with
// what was persisted.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"tavern/internal/core/application/services"
	"tavern/internal/core/application/usecases/commands"
	"tavern/internal/core/application/usecases/queries"
	"tavern/internal/core/domain/model/menuitem"
	"tavern/internal/core/domain/model/order"
	"tavern/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and the application layer.
type Server struct {
	orderService *services.OrderService

	// Collaborator command handlers
	createEmployeeHandler commands.CreateEmployeeCommandHandler
	updateEmployeeHandler commands.UpdateEmployeeCommandHandler
	deleteEmployeeHandler commands.DeleteEmployeeCommandHandler
	createMenuItemHandler commands.CreateMenuItemCommandHandler
	updateMenuItemHandler commands.UpdateMenuItemCommandHandler
	deleteMenuItemHandler commands.DeleteMenuItemCommandHandler

	// Query handlers
	getOrderLineItemsHandler queries.GetOrderLineItemsQueryHandler
	getMenuItemsHandler      queries.GetMenuItemsQueryHandler
	getMenuItemHandler       queries.GetMenuItemQueryHandler
	getEmployeesHandler      queries.GetEmployeesQueryHandler
}

// NewServer creates the HTTP server with its application-layer collaborators.
func NewServer(
	orderService *services.OrderService,
	createEmployeeHandler commands.CreateEmployeeCommandHandler,
	updateEmployeeHandler commands.UpdateEmployeeCommandHandler,
	deleteEmployeeHandler commands.DeleteEmployeeCommandHandler,
	createMenuItemHandler commands.CreateMenuItemCommandHandler,
	updateMenuItemHandler commands.UpdateMenuItemCommandHandler,
	deleteMenuItemHandler commands.DeleteMenuItemCommandHandler,
	getOrderLineItemsHandler queries.GetOrderLineItemsQueryHandler,
	getMenuItemsHandler queries.GetMenuItemsQueryHandler,
	getMenuItemHandler queries.GetMenuItemQueryHandler,
	getEmployeesHandler queries.GetEmployeesQueryHandler,
) *Server {
	return &Server{
		orderService:             orderService,
		createEmployeeHandler:    createEmployeeHandler,
		updateEmployeeHandler:    updateEmployeeHandler,
		deleteEmployeeHandler:    deleteEmployeeHandler,
		createMenuItemHandler:    createMenuItemHandler,
		updateMenuItemHandler:    updateMenuItemHandler,
		deleteMenuItemHandler:    deleteMenuItemHandler,
		getOrderLineItemsHandler: getOrderLineItemsHandler,
		getMenuItemsHandler:      getMenuItemsHandler,
		getMenuItemHandler:       getMenuItemHandler,
		getEmployeesHandler:      getEmployeesHandler,
	}
}

// RegisterRoutes wires the API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/unpaid", s.GetUnpaidOrders)
	api.PUT("/orders/:orderId", s.UpdateOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)
	api.POST("/orders/:orderId/payment", s.PayOrder)
	api.GET("/orders/:orderId/items", s.GetOrderLineItems)
	api.POST("/orders/:orderId/items", s.AddLineItem)
	api.PUT("/orders/:orderId/items/:itemId", s.EditLineItem)
	api.DELETE("/orders/:orderId/items/:itemId", s.RemoveLineItem)

	api.POST("/employees", s.CreateEmployee)
	api.GET("/employees", s.GetEmployees)
	api.PUT("/employees/:employeeId", s.UpdateEmployee)
	api.DELETE("/employees/:employeeId", s.DeleteEmployee)

	api.POST("/menu-items", s.CreateMenuItem)
	api.GET("/menu-items", s.GetMenuItems)
	api.GET("/menu-items/:menuItemId", s.GetMenuItem)
	api.PUT("/menu-items/:menuItemId", s.UpdateMenuItem)
	api.DELETE("/menu-items/:menuItemId", s.DeleteMenuItem)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	specs := make([]commands.OrderItemSpec, len(req.Items))
	for i, item := range req.Items {
		specs[i] = commands.OrderItemSpec{MenuItemID: item.MenuItemID, Quantity: item.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(req.EmployeeID, req.Name, specs)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.orderService.CreateOrder(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetUnpaidOrders handles GET /api/v1/orders/unpaid. Served from the working
// set, so no database round trip.
func (s *Server) GetUnpaidOrders(ctx echo.Context) error {
	orders := s.orderService.UnpaidOrders()

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PUT /api/v1/orders/:orderId with the complete desired
// state of the order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	specs := make([]commands.LineItemSpec, len(req.Items))
	for i, item := range req.Items {
		specs[i] = commands.LineItemSpec{
			LineItemID: item.LineItemID,
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, req.EmployeeID, req.Name, specs)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.orderService.UpdateOrder(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.orderService.DeleteOrder(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PayOrder handles POST /api/v1/orders/:orderId/payment.
func (s *Server) PayOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewPayOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.orderService.PayOrder(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderLineItems handles GET /api/v1/orders/:orderId/items.
func (s *Server) GetOrderLineItems(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderLineItemsQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	items, err := s.getOrderLineItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]lineItemResponse, len(items))
	for i, item := range items {
		response[i] = toLineItemResponse(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddLineItem handles POST /api/v1/orders/:orderId/items.
func (s *Server) AddLineItem(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req orderItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddLineItemCommand(orderID, req.MenuItemID, req.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	item, err := s.orderService.AddLineItem(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toLineItemResponse(item))
}

// EditLineItem handles PUT /api/v1/orders/:orderId/items/:itemId.
func (s *Server) EditLineItem(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	itemID, err := pathID(ctx, "itemId")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var req orderItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewEditLineItemCommand(orderID, itemID, req.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	item, err := s.orderService.EditLineItem(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toLineItemResponse(item))
}

// RemoveLineItem handles DELETE /api/v1/orders/:orderId/items/:itemId.
func (s *Server) RemoveLineItem(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	itemID, err := pathID(ctx, "itemId")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewRemoveLineItemCommand(orderID, itemID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.orderService.RemoveLineItem(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateEmployee handles POST /api/v1/employees.
func (s *Server) CreateEmployee(ctx echo.Context) error {
	var req createEmployeeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateEmployeeCommand(req.FirstName, req.LastName)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.createEmployeeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toEmployeeResponse(created))
}

// GetEmployees handles GET /api/v1/employees.
func (s *Server) GetEmployees(ctx echo.Context) error {
	employees, err := s.getEmployeesHandler.Handle(ctx.Request().Context(), queries.NewGetEmployeesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]employeeResponse, len(employees))
	for i, e := range employees {
		response[i] = toEmployeeResponse(e)
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateEmployee handles PUT /api/v1/employees/:employeeId.
func (s *Server) UpdateEmployee(ctx echo.Context) error {
	employeeID, err := pathID(ctx, "employeeId")
	if err != nil {
		return badRequest(ctx, "Invalid employee id")
	}

	var req createEmployeeRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateEmployeeCommand(employeeID, req.FirstName, req.LastName)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteEmployee handles DELETE /api/v1/employees/:employeeId.
func (s *Server) DeleteEmployee(ctx echo.Context) error {
	employeeID, err := pathID(ctx, "employeeId")
	if err != nil {
		return badRequest(ctx, "Invalid employee id")
	}

	cmd, err := commands.NewDeleteEmployeeCommand(employeeID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateMenuItem handles POST /api/v1/menu-items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var req createMenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateMenuItemCommand(req.Name, menuitem.ItemType(req.ItemType), req.Price, req.VatPercentage)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.createMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toMenuItemResponse(created))
}

// GetMenuItems handles GET /api/v1/menu-items.
func (s *Server) GetMenuItems(ctx echo.Context) error {
	items, err := s.getMenuItemsHandler.Handle(ctx.Request().Context(), queries.NewGetMenuItemsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]menuItemResponse, len(items))
	for i, item := range items {
		response[i] = toMenuItemResponse(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetMenuItem handles GET /api/v1/menu-items/:menuItemId.
func (s *Server) GetMenuItem(ctx echo.Context) error {
	menuItemID, err := pathID(ctx, "menuItemId")
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	query, err := queries.NewGetMenuItemQuery(menuItemID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	item, err := s.getMenuItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toMenuItemResponse(item))
}

// UpdateMenuItem handles PUT /api/v1/menu-items/:menuItemId.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	menuItemID, err := pathID(ctx, "menuItemId")
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	var req createMenuItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateMenuItemCommand(menuItemID, req.Name, menuitem.ItemType(req.ItemType), req.Price, req.VatPercentage)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteMenuItem handles DELETE /api/v1/menu-items/:menuItemId.
func (s *Server) DeleteMenuItem(ctx echo.Context) error {
	menuItemID, err := pathID(ctx, "menuItemId")
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	cmd, err := commands.NewDeleteMenuItemCommand(menuItemID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func pathID(ctx echo.Context, name string) (int64, error) {
	return strconv.ParseInt(ctx.Param(name), 10, 64)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP status codes: missing objects
// to 404, broken references and settled-order mutations to 409, storage
// outages to 503, everything else to 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConstraintViolation), errors.Is(err, order.ErrOrderAlreadyPaid):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrTransient):
		status = http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
