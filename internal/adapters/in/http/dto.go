package http

import (
	"time"

	"tavern/internal/core/domain/model/employee"
	"tavern/internal/core/domain/model/menuitem"
	"tavern/internal/core/domain/model/order"
)

// Request bodies. Plain structs bound from JSON; all validation happens in the
// command constructors and the domain.

type createOrderRequest struct {
	EmployeeID int64              `json:"employee_id"`
	Name       string             `json:"name"`
	Items      []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	LineItemID int64 `json:"line_item_id,omitempty"`
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

type updateOrderRequest struct {
	EmployeeID int64              `json:"employee_id"`
	Name       string             `json:"name"`
	Items      []orderItemRequest `json:"items"`
}

type createEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type createMenuItemRequest struct {
	Name          string  `json:"name"`
	ItemType      string  `json:"item_type"`
	Price         float64 `json:"price"`
	VatPercentage int     `json:"vat_percentage"`
}

// Response bodies.

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type orderResponse struct {
	ID                int64              `json:"id"`
	EmployeeID        int64              `json:"employee_id"`
	EmployeeFirstName string             `json:"employee_first_name"`
	EmployeeLastName  string             `json:"employee_last_name"`
	Name              string             `json:"name"`
	CreationDate      time.Time          `json:"creation_date"`
	IsPaid            bool               `json:"is_paid"`
	TotalPrice        float64            `json:"total_price"`
	TotalVat          float64            `json:"total_vat"`
	Items             []lineItemResponse `json:"items"`
}

type lineItemResponse struct {
	ID            int64   `json:"id"`
	OrderID       int64   `json:"order_id"`
	MenuItemID    int64   `json:"menu_item_id"`
	ItemName      string  `json:"item_name"`
	ItemType      string  `json:"item_type"`
	ItemPrice     float64 `json:"item_price"`
	VatPercentage int     `json:"vat_percentage"`
	ItemVat       float64 `json:"item_vat"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"total_price"`
	TotalVat      float64 `json:"total_vat"`
}

type employeeResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type menuItemResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	ItemType      string  `json:"item_type"`
	Price         float64 `json:"price"`
	VatPercentage int     `json:"vat_percentage"`
	Vat           float64 `json:"vat"`
}

func toOrderResponse(o *order.Order) orderResponse {
	items := make([]lineItemResponse, len(o.LineItems()))
	for i, item := range o.LineItems() {
		items[i] = toLineItemResponse(item)
	}

	return orderResponse{
		ID:                o.ID(),
		EmployeeID:        o.EmployeeID(),
		EmployeeFirstName: o.EmployeeFirstName(),
		EmployeeLastName:  o.EmployeeLastName(),
		Name:              o.Name(),
		CreationDate:      o.CreationDate(),
		IsPaid:            o.IsPaid(),
		TotalPrice:        o.TotalPrice(),
		TotalVat:          o.TotalVat(),
		Items:             items,
	}
}

func toLineItemResponse(item *order.LineItem) lineItemResponse {
	return lineItemResponse{
		ID:            item.ID(),
		OrderID:       item.OrderID(),
		MenuItemID:    item.MenuItemID(),
		ItemName:      item.ItemName(),
		ItemType:      string(item.ItemType()),
		ItemPrice:     item.ItemPrice(),
		VatPercentage: item.VatPercentage(),
		ItemVat:       item.ItemVat(),
		Quantity:      item.Quantity(),
		TotalPrice:    item.TotalPrice(),
		TotalVat:      item.TotalVat(),
	}
}

func toEmployeeResponse(e *employee.Employee) employeeResponse {
	return employeeResponse{
		ID:        e.ID(),
		FirstName: e.FirstName(),
		LastName:  e.LastName(),
	}
}

func toMenuItemResponse(m *menuitem.MenuItem) menuItemResponse {
	return menuItemResponse{
		ID:            m.ID(),
		Name:          m.Name(),
		ItemType:      string(m.Type()),
		Price:         m.Price(),
		VatPercentage: m.VatPercentage(),
		Vat:           m.Vat(),
	}
}
