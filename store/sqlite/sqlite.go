/*
Package sqlite provides a SQLite-backed payroll.Registry.

PURPOSE:
  Persists departments, employees, monthly plans and production records
  across sessions. Each registry operation loads the relevant slice of
  the object graph, runs the core payroll algorithms against it, and
  writes any mutations back.

KEY TABLES:
  departments: name (unique key), optional manager
  employees:   identity, department, base rate, scheme code tags
  plans:       (department, month) -> target
  production:  (employee, month) -> recorded output

ORDERING:
  Insertion order is the contract everywhere (department listing,
  employee listing, salary lines). Rowid order preserves it.

CONCURRENCY:
  One sync.Mutex serializes writes; there is a single logical actor per
  session and no finer granularity is needed. SQLite runs in WAL mode so
  concurrent readers do not block.

USAGE:
  reg, err := sqlite.New("./payroll.db")   // ":memory:" for tests
  if err != nil { ... }
  defer reg.Close()

SEE ALSO:
  - payroll/registry.go: Interface definition
  - payroll/store/memory.go: In-memory implementation
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
)

// Store implements payroll.Registry on SQLite.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

var _ payroll.Registry = (*Store)(nil)

// New opens (and if necessary creates) the database at dbPath.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS departments (
		name TEXT PRIMARY KEY,
		manager TEXT
	);

	CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		position TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'employee',
		department TEXT NOT NULL REFERENCES departments(name),
		base_salary TEXT NOT NULL,
		payment_scheme TEXT NOT NULL,
		bonus_scheme TEXT NOT NULL,
		bonus_amount TEXT NOT NULL DEFAULT '0'
	);
	CREATE INDEX IF NOT EXISTS idx_employees_department ON employees(department);

	CREATE TABLE IF NOT EXISTS plans (
		department TEXT NOT NULL REFERENCES departments(name),
		month TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (department, month)
	);

	CREATE TABLE IF NOT EXISTS production (
		employee_id INTEGER NOT NULL REFERENCES employees(id),
		month TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (employee_id, month)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// DEPARTMENTS
// =============================================================================

func (s *Store) CreateDepartment(ctx context.Context, name string) (*payroll.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO departments (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, name)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, payroll.ErrDepartmentExists
	}
	return payroll.NewDepartment(name), nil
}

func (s *Store) Department(ctx context.Context, name string) (*payroll.Department, error) {
	depts, _, err := s.loadGraph(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(depts) == 0 {
		return nil, &payroll.DepartmentNotFoundError{Name: name}
	}
	return depts[0], nil
}

func (s *Store) ListDepartments(ctx context.Context) ([]*payroll.Department, error) {
	depts, _, err := s.loadGraph(ctx, "")
	return depts, err
}

func (s *Store) departmentExists(ctx context.Context, name string) error {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM departments WHERE name = ?`, name).Scan(&one)
	if err == sql.ErrNoRows {
		return &payroll.DepartmentNotFoundError{Name: name}
	}
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (s *Store) AddEmployee(ctx context.Context, department string, e *payroll.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	depts, _, err := s.loadGraph(ctx, department)
	if err != nil {
		return err
	}
	if len(depts) == 0 {
		return &payroll.DepartmentNotFoundError{Name: department}
	}

	bonusCode, bonusAmount := payroll.BonusFixed, decimal.Zero
	if e.Bonus != nil {
		bonusCode = e.Bonus.Code()
		if fixed, ok := e.Bonus.(payroll.FixedBonus); ok {
			bonusAmount = fixed.Amount
		}
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO employees (name, position, role, department, base_salary, payment_scheme, bonus_scheme, bonus_amount)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Name, e.Position, string(e.Role), department,
		e.BaseSalary.String(), string(e.Payment.Code()), string(bonusCode), bonusAmount.String(),
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	if e.Role == payroll.RoleManager {
		if _, err := s.db.ExecContext(ctx,
			`UPDATE departments SET manager = ? WHERE name = ?`, e.Name, department); err != nil {
			return err
		}
	}

	for month, value := range e.Production {
		if err := s.writeProduction(ctx, id, month, value); err != nil {
			return err
		}
	}

	// Attach the passed entity so the caller sees the same placed state
	// the in-memory registry produces.
	depts[0].AddEmployee(e)
	if e.Role == payroll.RoleManager {
		depts[0].Manager = e
	}
	return nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]*payroll.Employee, error) {
	_, emps, err := s.loadGraph(ctx, "")
	if err != nil {
		return nil, err
	}
	result := make([]*payroll.Employee, len(emps))
	for i, row := range emps {
		result[i] = row.emp
	}
	return result, nil
}

// =============================================================================
// PLANS AND DISTRIBUTION
// =============================================================================

func (s *Store) SetPlan(ctx context.Context, department string, month payroll.MonthKey, value decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.departmentExists(ctx, department); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO plans (department, month, value)
		VALUES (?, ?, ?)
		ON CONFLICT(department, month) DO UPDATE SET value = excluded.value`,
		department, string(month), value.String(),
	)
	return err
}

func (s *Store) DistributePlan(ctx context.Context, department string, month payroll.MonthKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	depts, emps, err := s.loadGraph(ctx, department)
	if err != nil {
		return err
	}
	if len(depts) == 0 {
		return &payroll.DepartmentNotFoundError{Name: department}
	}

	depts[0].DistributePlan(month)

	// Write back the shares computed by the core. With an empty
	// department nothing was recorded and nothing is written.
	for _, row := range emps {
		if err := s.writeProduction(ctx, row.id, month, row.emp.ProductionFor(month)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) CalculateSalaries(ctx context.Context, month payroll.MonthKey) ([]payroll.SalaryLine, error) {
	_, emps, err := s.loadGraph(ctx, "")
	if err != nil {
		return nil, err
	}
	lines := make([]payroll.SalaryLine, 0, len(emps))
	for _, row := range emps {
		lines = append(lines, payroll.SalaryLine{
			Employee: row.emp,
			Salary:   row.emp.CalculateSalary(month),
		})
	}
	return lines, nil
}

func (s *Store) writeProduction(ctx context.Context, employeeID int64, month payroll.MonthKey, value decimal.Decimal) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO production (employee_id, month, value)
		VALUES (?, ?, ?)
		ON CONFLICT(employee_id, month) DO UPDATE SET value = excluded.value`,
		employeeID, string(month), value.String(),
	)
	return err
}

// =============================================================================
// GRAPH LOADING
// =============================================================================

type employeeRow struct {
	id  int64
	emp *payroll.Employee
}

// loadGraph rebuilds departments with their plans, employees and
// production records. With department == "" the whole registry is
// loaded; otherwise only the named department and its staff.
func (s *Store) loadGraph(ctx context.Context, department string) ([]*payroll.Department, []employeeRow, error) {
	deptQuery, deptArgs := `SELECT name, COALESCE(manager, '') FROM departments ORDER BY rowid`, []any{}
	if department != "" {
		deptQuery, deptArgs = `SELECT name, COALESCE(manager, '') FROM departments WHERE name = ?`, []any{department}
	}

	rows, err := s.db.QueryContext(ctx, deptQuery, deptArgs...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	byName := make(map[string]*payroll.Department)
	managerOf := make(map[string]string)
	var depts []*payroll.Department
	for rows.Next() {
		var name, manager string
		if err := rows.Scan(&name, &manager); err != nil {
			return nil, nil, err
		}
		d := payroll.NewDepartment(name)
		byName[name] = d
		if manager != "" {
			managerOf[name] = manager
		}
		depts = append(depts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	if len(depts) == 0 {
		return nil, nil, nil
	}

	if err := s.loadPlans(ctx, byName, department); err != nil {
		return nil, nil, err
	}
	emps, err := s.loadEmployees(ctx, byName, managerOf, department)
	if err != nil {
		return nil, nil, err
	}
	return depts, emps, nil
}

func (s *Store) loadPlans(ctx context.Context, byName map[string]*payroll.Department, department string) error {
	query, args := `SELECT department, month, value FROM plans`, []any{}
	if department != "" {
		query, args = query+` WHERE department = ?`, []any{department}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var dept, month, value string
		if err := rows.Scan(&dept, &month, &value); err != nil {
			return err
		}
		v, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("plan %s/%s: %w", dept, month, err)
		}
		if d, ok := byName[dept]; ok {
			d.SetPlan(payroll.MonthKey(month), v)
		}
	}
	return rows.Err()
}

func (s *Store) loadEmployees(ctx context.Context, byName map[string]*payroll.Department, managerOf map[string]string, department string) ([]employeeRow, error) {
	query, args := `
		SELECT id, name, position, role, department, base_salary, payment_scheme, bonus_scheme, bonus_amount
		FROM employees`, []any{}
	if department != "" {
		query, args = query+` WHERE department = ?`, []any{department}
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emps []employeeRow
	for rows.Next() {
		var (
			id                                        int64
			name, position, role, dept                string
			baseStr, paymentCode, bonusCode, bonusStr string
		)
		if err := rows.Scan(&id, &name, &position, &role, &dept, &baseStr, &paymentCode, &bonusCode, &bonusStr); err != nil {
			return nil, err
		}
		base, err := decimal.NewFromString(baseStr)
		if err != nil {
			return nil, fmt.Errorf("employee %s: base salary: %w", name, err)
		}
		bonusAmount, err := decimal.NewFromString(bonusStr)
		if err != nil {
			return nil, fmt.Errorf("employee %s: bonus amount: %w", name, err)
		}
		payment, err := factory.ParsePaymentScheme(paymentCode)
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", name, err)
		}
		bonus, err := factory.ParseBonusScheme(bonusCode, bonusAmount)
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", name, err)
		}

		e := payroll.NewEmployee(name, position, base, payment, bonus)
		e.Role = payroll.Role(role)
		if d, ok := byName[dept]; ok {
			d.AddEmployee(e)
			if managerOf[dept] == name {
				d.Manager = e
			}
		}
		emps = append(emps, employeeRow{id: id, emp: e})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range emps {
		if err := s.loadProduction(ctx, &emps[i]); err != nil {
			return nil, err
		}
	}
	return emps, nil
}

func (s *Store) loadProduction(ctx context.Context, row *employeeRow) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT month, value FROM production WHERE employee_id = ?`, row.id)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var month, value string
		if err := rows.Scan(&month, &value); err != nil {
			return err
		}
		v, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("production %s/%s: %w", row.emp.Name, month, err)
		}
		row.emp.SetProduction(payroll.MonthKey(month), v)
	}
	return rows.Err()
}
