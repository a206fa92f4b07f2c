/*
registry.go - Session state interface

PURPOSE:
  Defines the interface between command layers (HTTP handlers, batch
  loaders) and the collections of departments and employees they operate
  on. The registry is explicit state passed to each operation; there are
  no package-level singletons.

OPERATIONS:
  The registry operations are thin orchestration over the core entities:
  create/look up departments, attach employees, set and distribute
  plans, and compute salaries for a month across all employees.

IMPLEMENTATIONS:
  - payroll/store: in-memory (single-session, mutex-guarded)
  - store/sqlite:  SQLite-backed (persistent across sessions)
*/
package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// SalaryLine pairs an employee with its computed salary for a month.
type SalaryLine struct {
	Employee *Employee
	Salary   decimal.Decimal
}

// Registry holds the departments and employees of one payroll session,
// keyed by department name. Employees are listed in the order they were
// added, across all departments.
type Registry interface {
	// CreateDepartment registers an empty department under name.
	// Returns ErrDepartmentExists if the name is taken.
	CreateDepartment(ctx context.Context, name string) (*Department, error)

	// Department returns the department registered under name, or a
	// DepartmentNotFoundError.
	Department(ctx context.Context, name string) (*Department, error)

	// ListDepartments returns all departments in creation order.
	ListDepartments(ctx context.Context) ([]*Department, error)

	// AddEmployee places e under the named department and records it in
	// the session's employee list. Rejected with DepartmentNotFoundError
	// when the department does not exist; e is not registered in that case.
	AddEmployee(ctx context.Context, department string, e *Employee) error

	// ListEmployees returns all employees in add order.
	ListEmployees(ctx context.Context) ([]*Employee, error)

	// SetPlan records the monthly production target for the named department.
	SetPlan(ctx context.Context, department string, month MonthKey, value decimal.Decimal) error

	// DistributePlan splits the named department's target for month
	// evenly across its employees (see Department.DistributePlan).
	DistributePlan(ctx context.Context, department string, month MonthKey) error

	// CalculateSalaries computes the salary of every registered
	// employee for month, in add order.
	CalculateSalaries(ctx context.Context, month MonthKey) ([]SalaryLine, error)
}
