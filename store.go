package tracker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Store is the data access the menu actions are written against.
type Store interface {
	ListDepartments(ctx context.Context) ([]Department, error)
	ListRoles(ctx context.Context) ([]RoleView, error)
	ListEmployees(ctx context.Context) ([]EmployeeView, error)
	ListEmployeeNames(ctx context.Context) ([]EmployeeName, error)
	CreateDepartment(ctx context.Context, req NewDepartmentRequest) (*Department, error)
	CreateRole(ctx context.Context, req NewRoleRequest) (*Role, error)
	CreateEmployee(ctx context.Context, req NewEmployeeRequest) (*Employee, error)
	// UpdateEmployeeRole returns the number of employees matched, including
	// one that already held the role.
	UpdateEmployeeRole(ctx context.Context, req UpdateEmployeeRoleRequest) (int64, error)
	Close() error
}

// DB is a Store backed by a single gorm connection.
type DB struct {
	db     *gorm.DB
	logger *zap.Logger
}

var _ Store = (*DB)(nil)

// Open connects to the configured database. The pool is capped at one
// connection which lives until Close.
func Open(conf DatabaseConfig, zl *zap.Logger) (*DB, error) {
	if err := conf.validate(); err != nil {
		return nil, err
	}
	dialector := mysql.Open(conf.DSN())
	if conf.Driver == DriverSQLite {
		dialector = sqlite.Open(conf.DSN())
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(gormWriter{zl.Sugar()}, logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", conf.Driver, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if conf.AutoMigrate {
		if err := db.AutoMigrate(&Department{}, &Role{}, &Employee{}); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	zl.Info("store opened", zap.String("driver", conf.Driver), zap.String("database", conf.Name))
	return &DB{db: db, logger: zl}, nil
}

// gormWriter sends gorm's slow query and error traces to zap, which only
// prints warnings and up.
type gormWriter struct {
	sugar *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.sugar.Warnf(format, args...)
}

func (s *DB) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	s.logger.Info("store closed")
	return sqlDB.Close()
}

func (s *DB) ListDepartments(ctx context.Context) (departments []Department, err error) {
	err = s.db.WithContext(ctx).Order("id").Find(&departments).Error
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}

func (s *DB) ListRoles(ctx context.Context) (roles []RoleView, err error) {
	err = s.db.WithContext(ctx).
		Table("role").
		Select("role.id, role.title, role.salary, department.name AS department").
		Joins("INNER JOIN department ON role.department_id = department.id").
		Order("role.id").
		Scan(&roles).Error
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (s *DB) ListEmployees(ctx context.Context) (employees []EmployeeView, err error) {
	err = s.db.WithContext(ctx).
		Table("employee").
		Select(`employee.id, employee.first_name, employee.last_name,
			role.title AS job_title, department.name AS department, role.salary,
			manager.first_name AS manager_first_name, manager.last_name AS manager_last_name`).
		Joins("INNER JOIN role ON employee.role_id = role.id").
		Joins("INNER JOIN department ON role.department_id = department.id").
		Joins("LEFT JOIN employee manager ON employee.manager_id = manager.id").
		Order("employee.id").
		Scan(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (s *DB) ListEmployeeNames(ctx context.Context) (names []EmployeeName, err error) {
	err = s.db.WithContext(ctx).
		Model(&Employee{}).
		Select("id, first_name, last_name").
		Order("id").
		Scan(&names).Error
	if err != nil {
		return nil, fmt.Errorf("list employee names: %w", err)
	}
	return names, nil
}

func (s *DB) CreateDepartment(ctx context.Context, req NewDepartmentRequest) (*Department, error) {
	dept := &Department{Name: req.Name}
	if err := s.db.WithContext(ctx).Create(dept).Error; err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}
	return dept, nil
}

func (s *DB) CreateRole(ctx context.Context, req NewRoleRequest) (*Role, error) {
	role := &Role{
		Title:        req.Title,
		Salary:       req.Salary,
		DepartmentID: req.DepartmentID,
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(role).Error; err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	return role, nil
}

func (s *DB) CreateEmployee(ctx context.Context, req NewEmployeeRequest) (*Employee, error) {
	employee := &Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleID:    req.RoleID,
		ManagerID: req.ManagerID,
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(employee).Error; err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	return employee, nil
}

func (s *DB) UpdateEmployeeRole(ctx context.Context, req UpdateEmployeeRoleRequest) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", req.EmployeeID).
		Update("role_id", req.RoleID)
	if result.Error != nil {
		return 0, fmt.Errorf("update employee %d role: %w", req.EmployeeID, result.Error)
	}
	return result.RowsAffected, nil
}
