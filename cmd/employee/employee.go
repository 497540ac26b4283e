package employee

import (
	"context"
	"strconv"

	"github.com/samber/lo"
	"go.uber.org/zap"

	tracker "github.com/org-tools/employee-tracker"
	"github.com/org-tools/employee-tracker/cmd/base"
)

var header = []string{"id", "first_name", "last_name", "job_title", "department", "salary", "manager"}

// View prints every employee with title, department, salary and manager.
// The manager column is empty for employees without one.
func View(ctx context.Context, s *base.Session) error {
	employees, err := s.Store.ListEmployees(ctx)
	if err != nil {
		return err
	}
	base.RenderTable(s.Out, header, lo.Map(employees, func(e tracker.EmployeeView, _ int) []any {
		return []any{e.ID, e.FirstName, e.LastName, e.JobTitle, e.Department, e.Salary.String(), e.ManagerName()}
	}))
	return nil
}

func Add(ctx context.Context, s *base.Session) error {
	answers, err := s.Prompter.Ask(
		base.Field{Name: tracker.FieldFirstName, Message: "Enter the first name of the employee:"},
		base.Field{Name: tracker.FieldLastName, Message: "Enter the last name of the employee:"},
		base.Field{Name: tracker.FieldRoleID, Message: "Enter the role ID for the employee:"},
		base.Field{Name: tracker.FieldManagerID, Message: "Enter the manager ID for the employee (leave blank if none):"},
	)
	if err != nil {
		return err
	}
	req, err := tracker.ParseNewEmployee(answers)
	if err != nil {
		return err
	}
	if _, err := s.Store.CreateEmployee(ctx, req); err != nil {
		return err
	}
	base.RenderLine(s.Out, "Employee added successfully!")
	return nil
}

// UpdateRole loads the employees to choose from, then asks for the new role
// and writes it. The list must be read before the target id is known.
func UpdateRole(ctx context.Context, s *base.Session) error {
	employees, err := s.Store.ListEmployeeNames(ctx)
	if err != nil {
		return err
	}
	if len(employees) == 0 {
		base.RenderLine(s.Out, "No employees found.")
		return nil
	}
	choices := lo.Map(employees, func(e tracker.EmployeeName, _ int) base.Choice {
		return base.Choice{Label: e.Name(), Value: strconv.FormatUint(uint64(e.ID), 10)}
	})
	picked, err := s.Prompter.Ask(base.Field{
		Name:    tracker.FieldEmployeeID,
		Message: "Select an employee to update their role:",
		Choices: choices,
	})
	if err != nil {
		return err
	}
	role, err := s.Prompter.Ask(base.Field{
		Name:    tracker.FieldNewRoleID,
		Message: "Enter the new role ID for the employee:",
	})
	if err != nil {
		return err
	}
	req, err := tracker.ParseUpdateEmployeeRole(lo.Assign(picked, role))
	if err != nil {
		return err
	}
	updated, err := s.Store.UpdateEmployeeRole(ctx, req)
	if err != nil {
		return err
	}
	if updated == 0 {
		s.Logger.Warn("employee vanished before update", zap.Uint("employee", req.EmployeeID))
		base.RenderLine(s.Out, "No employee was updated.")
		return nil
	}
	base.RenderLine(s.Out, "Employee role updated successfully!")
	return nil
}
