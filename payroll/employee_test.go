package payroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/payroll-engine/payroll"
)

func TestEmployee_CalculateSalary_FixedScenario(t *testing.T) {
	// GIVEN: base 2000, fixed bonus 300, fixed salary scheme
	// WHEN: calculating for a month with no plan and no production
	// THEN: salary = 2000 + 300
	e := payroll.NewEmployee("Olena", "Analyst", fig(2000),
		payroll.FixedSalaryWithBonus{}, payroll.FixedBonus{Amount: fig(300)})

	salary := e.CalculateSalary(payroll.MustMonthKey("2024-05"))
	assertFig(t, 2300, salary)
}

func TestEmployee_CalculateSalary_ProductionScenario(t *testing.T) {
	// GIVEN: base 100, percent-of-base bonus, per-unit payment, 5 units produced
	// THEN: salary = 5*100 + 10 = 510
	e := payroll.NewEmployee("Ivan", "Operator", fig(100),
		payroll.PercentProductionWithBonus{}, payroll.PercentOfBaseBonus{})
	e.SetProduction(payroll.MustMonthKey("2024-05"), fig(5))

	salary := e.CalculateSalary(payroll.MustMonthKey("2024-05"))
	assertFig(t, 510, salary)
}

func TestEmployee_CalculateSalary_MissingMonthDefaultsToZero(t *testing.T) {
	// Absent production and plan are "no data recorded", not errors.
	d := payroll.NewDepartment("Sales")
	e := payroll.NewEmployee("Ivan", "Operator", fig(100),
		payroll.PercentProductionWithBonus{}, payroll.PercentOfBaseBonus{})
	d.AddEmployee(e)

	salary := e.CalculateSalary(payroll.MustMonthKey("2030-01"))
	assertFig(t, 10, salary) // actual=0, only the 10% bonus remains
}

func TestEmployee_CalculateSalary_NoDepartmentMeansZeroPlan(t *testing.T) {
	// An employee not yet placed under a department calculates against a
	// zero plan rather than failing.
	e := payroll.NewEmployee("Iryna", "Contractor", fig(800),
		payroll.PercentPlanWithBonus{}, payroll.FixedBonus{Amount: fig(40)})
	e.SetProduction(payroll.MustMonthKey("2024-05"), fig(123))

	salary := e.CalculateSalary(payroll.MustMonthKey("2024-05"))
	assertFig(t, 40, salary)
}

func TestEmployee_CalculateSalary_ReadsDepartmentPlan(t *testing.T) {
	d := payroll.NewDepartment("Sales")
	d.SetPlan(payroll.MustMonthKey("2024-05"), fig(200))

	e := payroll.NewEmployee("Olha", "Rep", fig(1000),
		payroll.PercentPlanWithBonus{}, payroll.FixedBonus{Amount: fig(50)})
	d.AddEmployee(e)
	e.SetProduction(payroll.MustMonthKey("2024-05"), fig(100))

	salary := e.CalculateSalary(payroll.MustMonthKey("2024-05"))
	assertFig(t, 550, salary) // (100/200)*1000 + 50
}

func TestEmployee_CalculateSalary_SideEffectFree(t *testing.T) {
	d := payroll.NewDepartment("Sales")
	d.SetPlan(payroll.MustMonthKey("2024-05"), fig(200))
	e := payroll.NewEmployee("Olha", "Rep", fig(1000),
		payroll.PercentPlanWithBonus{}, payroll.PlanPerformanceBonus{})
	d.AddEmployee(e)
	e.SetProduction(payroll.MustMonthKey("2024-05"), fig(150))

	first := e.CalculateSalary(payroll.MustMonthKey("2024-05"))
	second := e.CalculateSalary(payroll.MustMonthKey("2024-05"))

	assert.True(t, first.Equal(second))
	assertFig(t, 150, e.ProductionFor(payroll.MustMonthKey("2024-05")))
	assertFig(t, 200, d.PlanFor(payroll.MustMonthKey("2024-05")))
}

func TestMonthKey_Parse(t *testing.T) {
	_, err := payroll.ParseMonthKey("2024-05")
	assert.NoError(t, err)

	for _, bad := range []string{"", "2024", "2024-13", "05-2024", "2024-5", "2024-05-01"} {
		_, err := payroll.ParseMonthKey(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}
