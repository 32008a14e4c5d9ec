package postgres

import (
	"tavern/internal/adapters/out/postgres/employeerepo"
	"tavern/internal/adapters/out/postgres/menuitemrepo"
	"tavern/internal/adapters/out/postgres/orderrepo"
	"tavern/internal/adapters/out/postgres/pgerr"

	"gorm.io/gorm"
)

// fkOrdersEmployee keeps an order's employee reference valid. RESTRICT, so an
// employee with recorded orders cannot be removed.
const fkOrdersEmployee = `
DO $$ BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_orders_employee') THEN
		ALTER TABLE orders
			ADD CONSTRAINT fk_orders_employee
			FOREIGN KEY (employee_id) REFERENCES employees (id);
	END IF;
END $$;`

// fkOrderItemsMenuItem keeps a line item's catalog reference valid at the
// moment the row is written. RESTRICT, so a menu item that appears on stored
// orders cannot be removed.
const fkOrderItemsMenuItem = `
DO $$ BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_order_items_menu_item') THEN
		ALTER TABLE order_items
			ADD CONSTRAINT fk_order_items_menu_item
			FOREIGN KEY (menu_item_id) REFERENCES menu_items (id);
	END IF;
END $$;`

// unpaidOrdersView is the read model for the unpaid working set: order headers
// joined with totals precomputed over their line items.
const unpaidOrdersView = `
CREATE OR REPLACE VIEW unpaid_orders AS
SELECT
	o.id,
	o.employee_id,
	o.employee_first_name,
	o.employee_last_name,
	o.name,
	o.creation_date,
	o.is_paid,
	COALESCE(SUM(oi.total_price), 0) AS total_price,
	COALESCE(SUM(oi.total_vat), 0)  AS total_vat
FROM orders o
LEFT JOIN order_items oi ON oi.order_id = o.id
WHERE NOT o.is_paid
GROUP BY o.id;`

// Migrate creates or updates the schema: tables from the repository DTOs, the
// two cross-aggregate foreign keys, and the unpaid_orders view.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&employeerepo.EmployeeDTO{},
		&menuitemrepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	); err != nil {
		return pgerr.Classify("migrate schema", err)
	}

	for _, stmt := range []string{fkOrdersEmployee, fkOrderItemsMenuItem, unpaidOrdersView} {
		if err := db.Exec(stmt).Error; err != nil {
			return pgerr.Classify("migrate schema", err)
		}
	}
	return nil
}
