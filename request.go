package tracker

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Answers maps a prompt field name to the raw text the user typed.
type Answers map[string]string

// Prompt field names, shared by the menu actions and the parsers below.
const (
	FieldDepartmentName = "departmentName"
	FieldTitle          = "title"
	FieldSalary         = "salary"
	FieldDepartmentID   = "department_id"
	FieldFirstName      = "first_name"
	FieldLastName       = "last_name"
	FieldRoleID         = "role_id"
	FieldManagerID      = "manager_id"
	FieldEmployeeID     = "employeeId"
	FieldNewRoleID      = "newRoleId"
)

type NewDepartmentRequest struct {
	Name string
}

type NewRoleRequest struct {
	Title        string
	Salary       decimal.Decimal
	DepartmentID uint
}

type NewEmployeeRequest struct {
	FirstName string
	LastName  string
	RoleID    uint
	ManagerID *uint
}

type UpdateEmployeeRoleRequest struct {
	EmployeeID uint
	RoleID     uint
}

func ParseNewDepartment(a Answers) (req NewDepartmentRequest, err error) {
	req.Name, err = parseText(a, FieldDepartmentName)
	return req, err
}

func ParseNewRole(a Answers) (req NewRoleRequest, err error) {
	if req.Title, err = parseText(a, FieldTitle); err != nil {
		return req, err
	}
	if req.Salary, err = parseSalary(a, FieldSalary); err != nil {
		return req, err
	}
	req.DepartmentID, err = parseID(a, FieldDepartmentID)
	return req, err
}

// ParseNewEmployee treats a blank manager id as "no manager".
func ParseNewEmployee(a Answers) (req NewEmployeeRequest, err error) {
	if req.FirstName, err = parseText(a, FieldFirstName); err != nil {
		return req, err
	}
	if req.LastName, err = parseText(a, FieldLastName); err != nil {
		return req, err
	}
	if req.RoleID, err = parseID(a, FieldRoleID); err != nil {
		return req, err
	}
	if strings.TrimSpace(a[FieldManagerID]) == "" {
		return req, nil
	}
	managerID, err := parseID(a, FieldManagerID)
	if err != nil {
		return req, err
	}
	req.ManagerID = &managerID
	return req, nil
}

func ParseUpdateEmployeeRole(a Answers) (req UpdateEmployeeRoleRequest, err error) {
	if req.EmployeeID, err = parseID(a, FieldEmployeeID); err != nil {
		return req, err
	}
	req.RoleID, err = parseID(a, FieldNewRoleID)
	return req, err
}

func parseText(a Answers, field string) (string, error) {
	v := strings.TrimSpace(a[field])
	if v == "" {
		return "", &InputError{Field: field, Value: a[field], Err: ErrBlank}
	}
	return v, nil
}

func parseID(a Answers, field string) (uint, error) {
	raw := a[field]
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil || id == 0 {
		return 0, &InputError{Field: field, Value: raw, Err: ErrNotPositiveInt}
	}
	return uint(id), nil
}

func parseSalary(a Answers, field string) (decimal.Decimal, error) {
	raw := a[field]
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, &InputError{Field: field, Value: raw, Err: ErrNotDecimal}
	}
	if d.IsNegative() {
		return decimal.Zero, &InputError{Field: field, Value: raw, Err: ErrNegative}
	}
	return d, nil
}
