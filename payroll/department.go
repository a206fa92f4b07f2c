/*
department.go - Department entity and plan distribution

PURPOSE:
  A Department groups employees under a name, carries a monthly
  production plan, and can distribute that plan evenly across its staff.

PLAN DISTRIBUTION:
  DistributePlan is the only core operation with a cross-entity side
  effect: it writes plan[month]/len(employees) into every member's
  production record for that month, overwriting whatever was there.
  It models "plan assumed achieved exactly and divided equally" as the
  default allocation before real performance data arrives.

  The two degenerate cases are defined, not errors:
  - no employees: no-op (nothing to divide across)
  - no plan for the month: every member's production is set to zero

  Distribution is idempotent: repeating it with an unchanged plan and
  staff writes the same values again.
*/
package payroll

import "github.com/shopspring/decimal"

// Department holds an ordered collection of employees and a monthly
// production plan. Employee order is insertion order; the core does not
// deduplicate, adding the same employee twice is a caller error.
type Department struct {
	Name    string
	Manager *Employee
	Plan    map[MonthKey]decimal.Decimal

	employees []*Employee
}

// NewDepartment creates an empty department.
func NewDepartment(name string) *Department {
	return &Department{
		Name: name,
		Plan: make(map[MonthKey]decimal.Decimal),
	}
}

// AddEmployee appends e and sets its department back-reference, keeping
// the employee-to-department relation consistent with membership.
func (d *Department) AddEmployee(e *Employee) {
	e.dept = d
	d.employees = append(d.employees, e)
}

// Employees returns the members in insertion order. The returned slice
// is shared; callers must not modify it.
func (d *Department) Employees() []*Employee { return d.employees }

// Size returns the number of employees.
func (d *Department) Size() int { return len(d.employees) }

// PlanFor returns the production target for month, zero when none is set.
func (d *Department) PlanFor(month MonthKey) decimal.Decimal {
	return d.Plan[month]
}

// SetPlan records the production target for month.
func (d *Department) SetPlan(month MonthKey, value decimal.Decimal) {
	if d.Plan == nil {
		d.Plan = make(map[MonthKey]decimal.Decimal)
	}
	d.Plan[month] = value
}

// DistributePlan splits the month's target evenly across the current
// staff and records each share as that employee's production for the
// month, overwriting prior values. With no employees it is a no-op.
func (d *Department) DistributePlan(month MonthKey) {
	if len(d.employees) == 0 {
		return
	}
	perEmployee := d.PlanFor(month).Div(decimal.NewFromInt(int64(len(d.employees))))
	for _, e := range d.employees {
		e.SetProduction(month, perEmployee)
	}
}
