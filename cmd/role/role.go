package role

import (
	"context"

	"github.com/samber/lo"

	tracker "github.com/org-tools/employee-tracker"
	"github.com/org-tools/employee-tracker/cmd/base"
)

var header = []string{"id", "title", "salary", "department"}

// View prints every role with its department name.
func View(ctx context.Context, s *base.Session) error {
	roles, err := s.Store.ListRoles(ctx)
	if err != nil {
		return err
	}
	base.RenderTable(s.Out, header, lo.Map(roles, func(r tracker.RoleView, _ int) []any {
		return []any{r.ID, r.Title, r.Salary.String(), r.Department}
	}))
	return nil
}

func Add(ctx context.Context, s *base.Session) error {
	answers, err := s.Prompter.Ask(
		base.Field{Name: tracker.FieldTitle, Message: "Enter the title of the role:"},
		base.Field{Name: tracker.FieldSalary, Message: "Enter the salary for the role:"},
		base.Field{Name: tracker.FieldDepartmentID, Message: "Enter the department ID for the role:"},
	)
	if err != nil {
		return err
	}
	req, err := tracker.ParseNewRole(answers)
	if err != nil {
		return err
	}
	if _, err := s.Store.CreateRole(ctx, req); err != nil {
		return err
	}
	base.RenderLine(s.Out, "Role added successfully!")
	return nil
}
