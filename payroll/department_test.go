package payroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/payroll-engine/payroll"
)

func newStaffedDepartment(t *testing.T, n int) (*payroll.Department, []*payroll.Employee) {
	t.Helper()
	d := payroll.NewDepartment("Sales")
	emps := make([]*payroll.Employee, n)
	for i := range emps {
		emps[i] = payroll.NewEmployee("emp", "Rep", fig(100),
			payroll.FixedSalaryWithBonus{}, payroll.FixedBonus{})
		d.AddEmployee(emps[i])
	}
	return d, emps
}

// =============================================================================
// PLAN DISTRIBUTION
// =============================================================================

func TestDistributePlan_SplitsEvenly(t *testing.T) {
	// GIVEN: plan 1000 for 2024-05, 4 employees
	// WHEN: distributing
	// THEN: each employee's production for the month is 250
	d, emps := newStaffedDepartment(t, 4)
	month := payroll.MustMonthKey("2024-05")
	d.SetPlan(month, fig(1000))

	d.DistributePlan(month)

	for _, e := range emps {
		assertFig(t, 250, e.ProductionFor(month))
	}
}

func TestDistributePlan_OverwritesPriorProduction(t *testing.T) {
	d, emps := newStaffedDepartment(t, 2)
	month := payroll.MustMonthKey("2024-05")
	emps[0].SetProduction(month, fig(999))
	d.SetPlan(month, fig(100))

	d.DistributePlan(month)

	assertFig(t, 50, emps[0].ProductionFor(month))
	assertFig(t, 50, emps[1].ProductionFor(month))
}

func TestDistributePlan_Idempotent(t *testing.T) {
	d, emps := newStaffedDepartment(t, 3)
	month := payroll.MustMonthKey("2024-05")
	d.SetPlan(month, fig(100))

	d.DistributePlan(month)
	first := emps[0].ProductionFor(month)
	d.DistributePlan(month)

	for _, e := range emps {
		assert.True(t, e.ProductionFor(month).Equal(first),
			"second distribution changed the shares")
	}
}

func TestDistributePlan_EmptyDepartmentIsNoOp(t *testing.T) {
	d := payroll.NewDepartment("Empty")
	month := payroll.MustMonthKey("2024-05")
	d.SetPlan(month, fig(1000))

	d.DistributePlan(month)

	// Plan untouched, nothing else to observe.
	assertFig(t, 1000, d.PlanFor(month))
	assert.Zero(t, d.Size())
}

func TestDistributePlan_NoPlanWritesZero(t *testing.T) {
	// Distribution with no plan for the month records a zero share for
	// everyone, overwriting earlier figures.
	d, emps := newStaffedDepartment(t, 2)
	month := payroll.MustMonthKey("2024-05")
	emps[0].SetProduction(month, fig(77))

	d.DistributePlan(month)

	assertFig(t, 0, emps[0].ProductionFor(month))
	assertFig(t, 0, emps[1].ProductionFor(month))
}

func TestDistributePlan_OnlyAffectsRequestedMonth(t *testing.T) {
	d, emps := newStaffedDepartment(t, 2)
	may := payroll.MustMonthKey("2024-05")
	june := payroll.MustMonthKey("2024-06")
	d.SetPlan(may, fig(100))
	d.SetPlan(june, fig(400))

	d.DistributePlan(may)

	assertFig(t, 50, emps[0].ProductionFor(may))
	assertFig(t, 0, emps[0].ProductionFor(june))
}

// =============================================================================
// MEMBERSHIP
// =============================================================================

func TestAddEmployee_PreservesInsertionOrder(t *testing.T) {
	d := payroll.NewDepartment("Sales")
	names := []string{"a", "b", "c"}
	for _, n := range names {
		d.AddEmployee(payroll.NewEmployee(n, "", fig(0),
			payroll.FixedSalaryWithBonus{}, payroll.FixedBonus{}))
	}

	got := d.Employees()
	assert.Len(t, got, 3)
	for i, e := range got {
		assert.Equal(t, names[i], e.Name)
	}
}

func TestAddEmployee_SetsBackReference(t *testing.T) {
	d := payroll.NewDepartment("Sales")
	e := payroll.NewEmployee("a", "", fig(0),
		payroll.FixedSalaryWithBonus{}, payroll.FixedBonus{})

	d.AddEmployee(e)

	assert.Same(t, d, e.Department())
	assert.Equal(t, "Sales", e.DepartmentName())
}
