// Package employeerepo implements the employee persistence contract on GORM.
package employeerepo

// EmployeeDTO represents the database structure for employees.
type EmployeeDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"type:varchar(255);not null"`
	LastName  string `gorm:"type:varchar(255);not null"`
}

// TableName maps employees to the "employees" table.
func (EmployeeDTO) TableName() string {
	return "employees"
}
