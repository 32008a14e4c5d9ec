// Package orderrepo implements the order persistence contract: atomic
// aggregate creation, identity-based reconciliation of the line-item
// collection on full-replace updates, cascading deletes, the terminal paid
// transition, and single-row line-item writes.
package orderrepo

import (
	"time"
)

// OrderDTO represents the database structure for order headers. The employee
// name columns are a denormalized copy-once snapshot written by the store;
// creation_date is assigned by the database server.
type OrderDTO struct {
	ID                int64     `gorm:"primaryKey;autoIncrement"`
	EmployeeID        int64     `gorm:"not null;index"`
	Name              string    `gorm:"type:varchar(255);not null"`
	CreationDate      time.Time `gorm:"not null;default:now()"`
	IsPaid            bool      `gorm:"not null;default:false;index"`
	EmployeeFirstName string    `gorm:"type:varchar(255);not null"`
	EmployeeLastName  string    `gorm:"type:varchar(255);not null"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName maps order headers to the "orders" table.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for line items. Beyond the
// catalog reference it stores the frozen menu-item snapshot captured when the
// item was composed, so receipts stay accurate after menu changes, plus the
// store-computed totals.
type OrderItemDTO struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	OrderID       int64   `gorm:"not null;index"`
	MenuItemID    int64   `gorm:"not null;index"`
	Quantity      int     `gorm:"not null"`
	ItemName      string  `gorm:"type:varchar(255);not null"`
	ItemType      string  `gorm:"type:varchar(32);not null"`
	ItemPrice     float64 `gorm:"not null"`
	VatPercentage int     `gorm:"not null"`
	ItemVat       float64 `gorm:"not null"`
	TotalPrice    float64 `gorm:"not null"`
	TotalVat      float64 `gorm:"not null"`
}

// TableName maps line items to the "order_items" table.
func (OrderItemDTO) TableName() string {
	return "order_items"
}
