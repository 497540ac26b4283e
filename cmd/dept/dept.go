package dept

import (
	"context"

	"github.com/samber/lo"

	tracker "github.com/org-tools/employee-tracker"
	"github.com/org-tools/employee-tracker/cmd/base"
)

var header = []string{"id", "name"}

// View prints every department.
func View(ctx context.Context, s *base.Session) error {
	departments, err := s.Store.ListDepartments(ctx)
	if err != nil {
		return err
	}
	base.RenderTable(s.Out, header, lo.Map(departments, func(d tracker.Department, _ int) []any {
		return []any{d.ID, d.Name}
	}))
	return nil
}

// Add prompts for a name and inserts one department.
func Add(ctx context.Context, s *base.Session) error {
	answers, err := s.Prompter.Ask(base.Field{
		Name:    tracker.FieldDepartmentName,
		Message: "Enter the name of the department:",
	})
	if err != nil {
		return err
	}
	req, err := tracker.ParseNewDepartment(answers)
	if err != nil {
		return err
	}
	if _, err := s.Store.CreateDepartment(ctx, req); err != nil {
		return err
	}
	base.RenderLine(s.Out, "Department added successfully!")
	return nil
}
