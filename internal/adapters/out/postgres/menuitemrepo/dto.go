// Package menuitemrepo implements the menu catalog persistence contract on
// GORM.
package menuitemrepo

// MenuItemDTO represents the database structure for menu catalog entries.
type MenuItemDTO struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	Name          string  `gorm:"type:varchar(255);not null"`
	ItemType      string  `gorm:"type:varchar(32);not null"`
	Price         float64 `gorm:"not null"`
	VatPercentage int     `gorm:"not null"`
	Vat           float64 `gorm:"not null"`
}

// TableName maps catalog entries to the "menu_items" table.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}
