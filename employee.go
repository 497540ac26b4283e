package tracker

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Employee holds one role and optionally reports to another employee.
type Employee struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"type:varchar(30);not null"`
	LastName  string `gorm:"type:varchar(30);not null"`
	RoleID    uint   `gorm:"not null;index"`
	Role      Role
	ManagerID *uint `gorm:"index"`
	Manager   *Employee
}

func (Employee) TableName() string {
	return "employee"
}

// EmployeeView is an employee joined with role, department and manager.
type EmployeeView struct {
	ID               uint
	FirstName        string
	LastName         string
	JobTitle         string
	Department       string
	Salary           decimal.Decimal
	ManagerFirstName *string
	ManagerLastName  *string
}

// ManagerName is the manager's full name, empty when there is no manager.
func (e EmployeeView) ManagerName() string {
	if e.ManagerFirstName == nil && e.ManagerLastName == nil {
		return ""
	}
	return fullName(derefString(e.ManagerFirstName), derefString(e.ManagerLastName))
}

// EmployeeName is the id and full name pair offered when picking an employee.
type EmployeeName struct {
	ID        uint
	FirstName string
	LastName  string
}

func (e EmployeeName) Name() string {
	return fullName(e.FirstName, e.LastName)
}

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
