// Package store provides Registry implementations.
package store

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// MEMORY REGISTRY - In-memory implementation (single interactive session)
// =============================================================================

// Memory keeps the full department/employee graph in memory. One mutex
// guards the whole registry; operations are applied in the order the
// caller issues them.
type Memory struct {
	mu          sync.RWMutex
	departments map[string]*payroll.Department
	deptOrder   []string
	employees   []*payroll.Employee
}

var _ payroll.Registry = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		departments: make(map[string]*payroll.Department),
	}
}

func (m *Memory) CreateDepartment(_ context.Context, name string) (*payroll.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.departments[name]; ok {
		return nil, payroll.ErrDepartmentExists
	}
	d := payroll.NewDepartment(name)
	m.departments[name] = d
	m.deptOrder = append(m.deptOrder, name)
	return d, nil
}

func (m *Memory) Department(_ context.Context, name string) (*payroll.Department, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.departmentLocked(name)
}

func (m *Memory) departmentLocked(name string) (*payroll.Department, error) {
	d, ok := m.departments[name]
	if !ok {
		return nil, &payroll.DepartmentNotFoundError{Name: name}
	}
	return d, nil
}

func (m *Memory) ListDepartments(_ context.Context) ([]*payroll.Department, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*payroll.Department, 0, len(m.deptOrder))
	for _, name := range m.deptOrder {
		result = append(result, m.departments[name])
	}
	return result, nil
}

func (m *Memory) AddEmployee(_ context.Context, department string, e *payroll.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, err := m.departmentLocked(department)
	if err != nil {
		return err
	}
	d.AddEmployee(e)
	m.employees = append(m.employees, e)
	return nil
}

func (m *Memory) ListEmployees(_ context.Context) ([]*payroll.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*payroll.Employee, len(m.employees))
	copy(result, m.employees)
	return result, nil
}

func (m *Memory) SetPlan(_ context.Context, department string, month payroll.MonthKey, value decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, err := m.departmentLocked(department)
	if err != nil {
		return err
	}
	d.SetPlan(month, value)
	return nil
}

func (m *Memory) DistributePlan(_ context.Context, department string, month payroll.MonthKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, err := m.departmentLocked(department)
	if err != nil {
		return err
	}
	d.DistributePlan(month)
	return nil
}

func (m *Memory) CalculateSalaries(_ context.Context, month payroll.MonthKey) ([]payroll.SalaryLine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lines := make([]payroll.SalaryLine, 0, len(m.employees))
	for _, e := range m.employees {
		lines = append(lines, payroll.SalaryLine{
			Employee: e,
			Salary:   e.CalculateSalary(month),
		})
	}
	return lines, nil
}
