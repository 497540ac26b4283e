package tracker

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := Open(DatabaseConfig{
		Driver:      DriverSQLite,
		Name:        "file:" + name + "?mode=memory&cache=shared",
		AutoMigrate: true,
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func uintPtr(v uint) *uint {
	return &v
}

func TestDepartments(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	dept, err := db.CreateDepartment(ctx, NewDepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)
	assert.NotZero(t, dept.ID)
	_, err = db.CreateDepartment(ctx, NewDepartmentRequest{Name: "Sales"})
	require.NoError(t, err)

	first, err := db.ListDepartments(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "Engineering", first[0].Name)
	assert.Equal(t, "Sales", first[1].Name)

	second, err := db.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRolesJoinDepartment(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	dept, err := db.CreateDepartment(ctx, NewDepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)
	_, err = db.CreateRole(ctx, NewRoleRequest{
		Title:        "Engineer",
		Salary:       decimal.NewFromInt(85000),
		DepartmentID: dept.ID,
	})
	require.NoError(t, err)

	roles, err := db.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "Engineer", roles[0].Title)
	assert.Equal(t, "Engineering", roles[0].Department)
	assert.True(t, roles[0].Salary.Equal(decimal.NewFromInt(85000)))
}

func TestCreateRoleUnknownDepartment(t *testing.T) {
	db := openTestDB(t)

	_, err := db.CreateRole(context.Background(), NewRoleRequest{
		Title:        "Engineer",
		Salary:       decimal.NewFromInt(1),
		DepartmentID: 99,
	})
	assert.ErrorContains(t, err, "create role")
}

func seedEmployees(t *testing.T, db *DB) (engineer, lead *Role, ada, bob *Employee) {
	t.Helper()
	ctx := context.Background()
	dept, err := db.CreateDepartment(ctx, NewDepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)
	engineer, err = db.CreateRole(ctx, NewRoleRequest{Title: "Engineer", Salary: decimal.NewFromInt(85000), DepartmentID: dept.ID})
	require.NoError(t, err)
	lead, err = db.CreateRole(ctx, NewRoleRequest{Title: "Lead", Salary: decimal.NewFromInt(120000), DepartmentID: dept.ID})
	require.NoError(t, err)
	ada, err = db.CreateEmployee(ctx, NewEmployeeRequest{FirstName: "Ada", LastName: "Lovelace", RoleID: lead.ID})
	require.NoError(t, err)
	bob, err = db.CreateEmployee(ctx, NewEmployeeRequest{FirstName: "Bob", LastName: "Smith", RoleID: engineer.ID, ManagerID: uintPtr(ada.ID)})
	require.NoError(t, err)
	return engineer, lead, ada, bob
}

func TestEmployeesWithManager(t *testing.T) {
	db := openTestDB(t)
	seedEmployees(t, db)

	employees, err := db.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)

	assert.Equal(t, "Ada", employees[0].FirstName)
	assert.Equal(t, "Lead", employees[0].JobTitle)
	assert.Equal(t, "Engineering", employees[0].Department)
	assert.Nil(t, employees[0].ManagerFirstName)
	assert.Empty(t, employees[0].ManagerName())

	assert.Equal(t, "Bob", employees[1].FirstName)
	assert.Equal(t, "Engineer", employees[1].JobTitle)
	assert.True(t, employees[1].Salary.Equal(decimal.NewFromInt(85000)))
	assert.Equal(t, "Ada Lovelace", employees[1].ManagerName())
}

func TestListEmployeeNames(t *testing.T) {
	db := openTestDB(t)
	_, _, ada, bob := seedEmployees(t, db)

	names, err := db.ListEmployeeNames(context.Background())
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, ada.ID, names[0].ID)
	assert.Equal(t, "Ada Lovelace", names[0].Name())
	assert.Equal(t, bob.ID, names[1].ID)
	assert.Equal(t, "Bob Smith", names[1].Name())
}

func TestUpdateEmployeeRoleTouchesOneRow(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	engineer, lead, ada, bob := seedEmployees(t, db)

	updated, err := db.UpdateEmployeeRole(ctx, UpdateEmployeeRoleRequest{EmployeeID: bob.ID, RoleID: lead.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	employees, err := db.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, ada.ID, employees[0].ID)
	assert.Equal(t, "Lead", employees[0].JobTitle)
	assert.Equal(t, bob.ID, employees[1].ID)
	assert.Equal(t, "Lead", employees[1].JobTitle)

	updated, err = db.UpdateEmployeeRole(ctx, UpdateEmployeeRoleRequest{EmployeeID: 404, RoleID: engineer.ID})
	require.NoError(t, err)
	assert.Zero(t, updated)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(DatabaseConfig{Driver: "oracle"}, zap.NewNop())
	assert.Error(t, err)
}

func TestUpdateEmployeeRoleToCurrentRole(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	engineer, _, _, bob := seedEmployees(t, db)

	updated, err := db.UpdateEmployeeRole(ctx, UpdateEmployeeRoleRequest{EmployeeID: bob.ID, RoleID: engineer.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)
}

func TestGormWriterLogsToZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	zl := zap.New(core).With(zap.String("session", "s1"))

	gormWriter{zl.Sugar()}.Printf("%s [%.3fms] %s", "store.go:1", 2.5, "SELECT 1")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "store.go:1 [2.500ms] SELECT 1", entries[0].Message)
	assert.Equal(t, "s1", entries[0].ContextMap()["session"])
}
