package tracker

import "github.com/shopspring/decimal"

// Role is a job title with a salary, scoped to one department.
type Role struct {
	ID           uint            `gorm:"primaryKey"`
	Title        string          `gorm:"type:varchar(30);not null"`
	Salary       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DepartmentID uint            `gorm:"not null;index"`
	Department   Department
}

func (Role) TableName() string {
	return "role"
}

// RoleView is a role joined with the name of its department.
type RoleView struct {
	ID         uint
	Title      string
	Salary     decimal.Decimal
	Department string
}
