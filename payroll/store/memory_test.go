package store_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/payroll/store"
)

func fig(v float64) decimal.Decimal { return payroll.NewFigure(v) }

func newEmployee(name string) *payroll.Employee {
	return payroll.NewEmployee(name, "Rep", fig(100),
		payroll.FixedSalaryWithBonus{}, payroll.FixedBonus{Amount: fig(10)})
}

func TestMemory_CreateDepartment_RejectsDuplicates(t *testing.T) {
	reg := store.NewMemory()
	ctx := context.Background()

	_, err := reg.CreateDepartment(ctx, "Sales")
	require.NoError(t, err)

	_, err = reg.CreateDepartment(ctx, "Sales")
	assert.ErrorIs(t, err, payroll.ErrDepartmentExists)
}

func TestMemory_AddEmployee_UnknownDepartmentRejected(t *testing.T) {
	// GIVEN: no departments
	// WHEN: adding an employee under "Ghost"
	// THEN: rejected, and the employee is not registered
	reg := store.NewMemory()
	ctx := context.Background()

	err := reg.AddEmployee(ctx, "Ghost", newEmployee("a"))

	assert.ErrorIs(t, err, payroll.ErrDepartmentNotFound)
	var nf *payroll.DepartmentNotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, "Ghost", nf.Name)

	emps, err := reg.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, emps, "rejected add must not register the employee")
}

func TestMemory_SetPlan_UnknownDepartmentRejected(t *testing.T) {
	reg := store.NewMemory()
	err := reg.SetPlan(context.Background(), "Ghost", payroll.MustMonthKey("2024-05"), fig(100))
	assert.ErrorIs(t, err, payroll.ErrDepartmentNotFound)
}

func TestMemory_ListDepartments_CreationOrder(t *testing.T) {
	reg := store.NewMemory()
	ctx := context.Background()

	for _, name := range []string{"Sales", "Assembly", "QA"} {
		_, err := reg.CreateDepartment(ctx, name)
		require.NoError(t, err)
	}

	depts, err := reg.ListDepartments(ctx)
	require.NoError(t, err)
	require.Len(t, depts, 3)
	assert.Equal(t, "Sales", depts[0].Name)
	assert.Equal(t, "Assembly", depts[1].Name)
	assert.Equal(t, "QA", depts[2].Name)
}

func TestMemory_DistributeAndCalculate(t *testing.T) {
	// GIVEN: Sales with plan 1000 for 2024-05 and 4 employees
	// WHEN: distributing and calculating salaries
	// THEN: every employee produced 250 and earns base + fixed bonus
	reg := store.NewMemory()
	ctx := context.Background()
	month := payroll.MustMonthKey("2024-05")

	_, err := reg.CreateDepartment(ctx, "Sales")
	require.NoError(t, err)
	for _, n := range []string{"a", "b", "c", "d"} {
		require.NoError(t, reg.AddEmployee(ctx, "Sales", newEmployee(n)))
	}
	require.NoError(t, reg.SetPlan(ctx, "Sales", month, fig(1000)))
	require.NoError(t, reg.DistributePlan(ctx, "Sales", month))

	emps, err := reg.ListEmployees(ctx)
	require.NoError(t, err)
	for _, e := range emps {
		assert.True(t, e.ProductionFor(month).Equal(fig(250)),
			"%s: want production 250, got %s", e.Name, e.ProductionFor(month))
	}

	lines, err := reg.CalculateSalaries(ctx, month)
	require.NoError(t, err)
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.True(t, line.Salary.Equal(fig(110)), "want 110, got %s", line.Salary)
	}
}

func TestMemory_CalculateSalaries_AddOrder(t *testing.T) {
	reg := store.NewMemory()
	ctx := context.Background()

	_, err := reg.CreateDepartment(ctx, "Sales")
	require.NoError(t, err)
	_, err = reg.CreateDepartment(ctx, "QA")
	require.NoError(t, err)

	require.NoError(t, reg.AddEmployee(ctx, "QA", newEmployee("first")))
	require.NoError(t, reg.AddEmployee(ctx, "Sales", newEmployee("second")))

	lines, err := reg.CalculateSalaries(ctx, payroll.MustMonthKey("2024-05"))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "first", lines[0].Employee.Name)
	assert.Equal(t, "second", lines[1].Employee.Name)
}
