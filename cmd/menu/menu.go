package menu

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	tracker "github.com/org-tools/employee-tracker"
	"github.com/org-tools/employee-tracker/cmd/base"
	"github.com/org-tools/employee-tracker/cmd/dept"
	"github.com/org-tools/employee-tracker/cmd/employee"
	"github.com/org-tools/employee-tracker/cmd/role"
)

type Action uint

const (
	ViewDepartments Action = iota
	ViewRoles
	ViewEmployees
	AddDepartment
	AddRole
	AddEmployee
	UpdateEmployeeRole
	Exit
	actionCount
)

const Prompt = "What would you like to do?"

var labels = [actionCount]string{
	ViewDepartments:    "View all departments",
	ViewRoles:          "View all roles",
	ViewEmployees:      "View all employees",
	AddDepartment:      "Add a department",
	AddRole:            "Add a role",
	AddEmployee:        "Add an employee",
	UpdateEmployeeRole: "Update an employee role",
	Exit:               "Exit",
}

// behaviours is indexed by Action; Exit has none.
var behaviours = [actionCount]base.Action{
	ViewDepartments:    dept.View,
	ViewRoles:          role.View,
	ViewEmployees:      employee.View,
	AddDepartment:      dept.Add,
	AddRole:            role.Add,
	AddEmployee:        employee.Add,
	UpdateEmployeeRole: employee.UpdateRole,
}

// Actions lists every menu entry in display order.
func Actions() []Action {
	return lo.Times(int(actionCount), func(i int) Action { return Action(i) })
}

func (a Action) String() string {
	if a >= actionCount {
		return fmt.Sprintf("Action(%d)", uint(a))
	}
	return labels[a]
}

func ParseAction(label string) (Action, bool) {
	i := lo.IndexOf(labels[:], label)
	if i < 0 {
		return 0, false
	}
	return Action(i), true
}

func choices() []base.Choice {
	return lo.Map(Actions(), func(a Action, _ int) base.Choice {
		return base.Choice{Label: a.String(), Value: a.String()}
	})
}

// Run shows the menu until Exit is picked. Bad input is reported and the
// menu shown again; any other error ends the loop and is returned.
func Run(ctx context.Context, s *base.Session) error {
	menu := choices()
	for {
		label, err := s.Prompter.Select(Prompt, menu)
		if err != nil {
			return err
		}
		action, ok := ParseAction(label)
		if !ok {
			s.Logger.Warn("unrecognized menu choice", zap.String("choice", label))
			base.RenderLine(s.Out, "Invalid choice. Please select a valid option.")
			continue
		}
		if action == Exit {
			return nil
		}
		s.Logger.Debug("dispatch", zap.Stringer("action", action))
		err = behaviours[action](ctx, s)
		if tracker.IsInputError(err) {
			base.RenderLine(s.Out, err.Error())
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", action, err)
		}
	}
}
