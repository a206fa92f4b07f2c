/*
employee.go - Employee entity and salary calculation

PURPOSE:
  An Employee ties identity (name, position, role) to the compensation
  rules that apply to them: a base rate, a payment scheme and a bonus
  scheme, plus a per-month production record.

RELATIONSHIPS:
  An Employee holds a non-owning back-reference to its Department, set
  by Department.AddEmployee. The registry that created the employee owns
  its lifetime; the department only lists it. Salary calculation reads
  the department's plan through this reference. An employee that has not
  been added to a department calculates against a zero plan.

SALARY CALCULATION:
  actual = production[month]        (zero when absent)
  plan   = department.plan[month]   (zero when absent or no department)
  bonus  = bonusScheme(base, plan, actual)
  salary = paymentScheme(base, bonus, plan, actual)

  Absent data is a legitimate business state ("nothing recorded yet"),
  never an error. The calculation is side-effect free.
*/
package payroll

import "github.com/shopspring/decimal"

// =============================================================================
// ROLE
// =============================================================================

// Role tags an employee's function. A manager is an ordinary employee
// with a role tag; there is no additional state or behavior.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// =============================================================================
// EMPLOYEE
// =============================================================================

// Employee is a member of a department with an attached compensation
// rule set and a per-month production record.
type Employee struct {
	Name       string
	Position   string
	Role       Role
	BaseSalary decimal.Decimal
	Payment    PaymentScheme
	Bonus      BonusScheme
	Production map[MonthKey]decimal.Decimal

	// Set by Department.AddEmployee. Non-owning.
	dept *Department
}

// NewEmployee creates an employee with all compensation fields set.
// The production record starts empty; it is filled either directly or
// by Department.DistributePlan.
func NewEmployee(name, position string, base decimal.Decimal, payment PaymentScheme, bonus BonusScheme) *Employee {
	return &Employee{
		Name:       name,
		Position:   position,
		Role:       RoleEmployee,
		BaseSalary: base,
		Payment:    payment,
		Bonus:      bonus,
		Production: make(map[MonthKey]decimal.Decimal),
	}
}

// Department returns the department this employee belongs to, or nil if
// it has not been added to one.
func (e *Employee) Department() *Department { return e.dept }

// DepartmentName returns the owning department's name, or "" if unset.
func (e *Employee) DepartmentName() string {
	if e.dept == nil {
		return ""
	}
	return e.dept.Name
}

// ProductionFor returns the recorded production for month, zero when
// nothing has been recorded.
func (e *Employee) ProductionFor(month MonthKey) decimal.Decimal {
	return e.Production[month]
}

// SetProduction records the production figure for month, overwriting
// any previous value.
func (e *Employee) SetProduction(month MonthKey, value decimal.Decimal) {
	if e.Production == nil {
		e.Production = make(map[MonthKey]decimal.Decimal)
	}
	e.Production[month] = value
}

// CalculateSalary computes this employee's salary for the given month.
// Missing production or plan data defaults to zero.
func (e *Employee) CalculateSalary(month MonthKey) decimal.Decimal {
	actual := e.Production[month]
	plan := decimal.Zero
	if e.dept != nil {
		plan = e.dept.PlanFor(month)
	}

	bonus := decimal.Zero
	if e.Bonus != nil {
		bonus = e.Bonus.CalculateBonus(e.BaseSalary, plan, actual)
	}
	return e.Payment.Calculate(e.BaseSalary, bonus, plan, actual)
}
