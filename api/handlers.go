/*
handlers.go - HTTP API handlers for the payroll engine

PURPOSE:
  Exposes the payroll registry via REST. Handles HTTP request/response,
  JSON serialization, and delegates to the core. Mirrors the actions of
  the original interactive session: create departments, add employees,
  set and distribute plans, calculate salaries, save and load records.

ENDPOINTS:
  Departments:
    GET    /api/departments                      List departments
    POST   /api/departments                      Create department
    GET    /api/departments/{name}               Department details
    PUT    /api/departments/{name}/plan          Set monthly plan
    POST   /api/departments/{name}/distribute    Distribute plan

  Employees:
    GET    /api/employees                        List employees
    POST   /api/employees                        Create employee

  Salaries:
    GET    /api/salaries?month=YYYY-MM           Salary per employee

  Records:
    POST   /api/records/save                     Save to JSON/CSV file
    POST   /api/records/load                     Load from JSON/CSV file

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed input, unknown scheme code, invalid month
  - 404: Department not found
  - 409: Department already exists
  - 500: Storage failures

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/records"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Registry payroll.Registry
}

// NewHandler creates a new handler over the given registry.
func NewHandler(reg payroll.Registry) *Handler {
	return &Handler{Registry: reg}
}

// =============================================================================
// DEPARTMENT HANDLERS
// =============================================================================

// ListDepartments returns all departments in creation order.
func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	depts, err := h.Registry.ListDepartments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list departments", err)
		return
	}

	dtos := make([]DepartmentDTO, len(depts))
	for i, d := range depts {
		dtos[i] = toDepartmentDTO(d)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateDepartment registers a new empty department.
func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Department name is required", nil)
		return
	}

	d, err := h.Registry.CreateDepartment(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, payroll.ErrDepartmentExists) {
			writeError(w, http.StatusConflict, "Department already exists", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create department", err)
		return
	}
	writeJSON(w, http.StatusCreated, toDepartmentDTO(d))
}

// GetDepartment returns a single department.
func (h *Handler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	d, err := h.Registry.Department(r.Context(), name)
	if err != nil {
		writeRegistryError(w, "Failed to get department", err)
		return
	}
	writeJSON(w, http.StatusOK, toDepartmentDTO(d))
}

// SetPlan records a department's monthly production target.
func (h *Handler) SetPlan(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req SetPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	month, err := payroll.ParseMonthKey(req.Month)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month", err)
		return
	}
	if req.Value < 0 {
		writeError(w, http.StatusBadRequest, "Plan value must be non-negative", nil)
		return
	}

	if err := h.Registry.SetPlan(r.Context(), name, month, payroll.NewFigure(req.Value)); err != nil {
		writeRegistryError(w, "Failed to set plan", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// DistributePlan spreads the month's target across the department.
func (h *Handler) DistributePlan(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req DistributePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	month, err := payroll.ParseMonthKey(req.Month)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month", err)
		return
	}

	if err := h.Registry.DistributePlan(r.Context(), name, month); err != nil {
		writeRegistryError(w, "Failed to distribute plan", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns all employees in add order.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	emps, err := h.Registry.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(emps))
	for i, e := range emps {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateEmployee creates an employee under an existing department.
// Nothing is registered when the scheme codes or the department are
// rejected.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Employee name is required", nil)
		return
	}
	if req.BaseSalary < 0 {
		writeError(w, http.StatusBadRequest, "Base salary must be non-negative", nil)
		return
	}

	payment, err := factory.ParsePaymentScheme(req.Payment)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown payment scheme", err)
		return
	}
	bonus, err := factory.ParseBonusScheme(req.Bonus, payroll.NewFigure(req.BonusAmount))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown bonus scheme", err)
		return
	}

	e := payroll.NewEmployee(req.Name, req.Position, payroll.NewFigure(req.BaseSalary), payment, bonus)
	if req.Manager {
		e.Role = payroll.RoleManager
	}

	if err := h.Registry.AddEmployee(r.Context(), req.Department, e); err != nil {
		writeRegistryError(w, "Failed to add employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeDTO(e))
}

// =============================================================================
// SALARY HANDLERS
// =============================================================================

// CalculateSalaries returns every employee's salary for the month.
func (h *Handler) CalculateSalaries(w http.ResponseWriter, r *http.Request) {
	month, err := payroll.ParseMonthKey(r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month", err)
		return
	}

	lines, err := h.Registry.CalculateSalaries(r.Context(), month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to calculate salaries", err)
		return
	}

	dtos := make([]SalaryLineDTO, len(lines))
	for i, line := range lines {
		dtos[i] = SalaryLineDTO{
			Name:       line.Employee.Name,
			Position:   line.Employee.Position,
			Department: line.Employee.DepartmentName(),
		}
		dtos[i].Salary, _ = line.Salary.Float64()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"month":    month.String(),
		"salaries": dtos,
	})
}

// =============================================================================
// RECORD HANDLERS
// =============================================================================

// SaveRecords writes all registered employees to a JSON or CSV file.
func (h *Handler) SaveRecords(w http.ResponseWriter, r *http.Request) {
	req, saver, _, ok := h.recordsEndpoint(w, r)
	if !ok {
		return
	}

	emps, err := h.Registry.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	data := make([]records.Employee, len(emps))
	for i, e := range emps {
		data[i] = factory.EmployeeToRecord(e)
	}
	if err := saver.Save(req.Path, data); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save records", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "saved": len(data)})
}

// LoadRecords reads employee records from a file and registers them,
// creating departments that do not exist yet.
func (h *Handler) LoadRecords(w http.ResponseWriter, r *http.Request) {
	req, _, loader, ok := h.recordsEndpoint(w, r)
	if !ok {
		return
	}

	data, err := loader.Load(req.Path)
	if err != nil {
		status := http.StatusInternalServerError
		if payroll.IsClientError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, "Failed to load records", err)
		return
	}

	ctx := r.Context()
	loaded := 0
	for _, rec := range data {
		e, dept, err := factory.EmployeeFromRecord(rec)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Malformed record", err)
			return
		}
		if _, err := h.Registry.Department(ctx, dept); payroll.IsNotFound(err) {
			if _, err := h.Registry.CreateDepartment(ctx, dept); err != nil {
				writeError(w, http.StatusInternalServerError, "Failed to create department", err)
				return
			}
		} else if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to look up department", err)
			return
		}
		if err := h.Registry.AddEmployee(ctx, dept, e); err != nil {
			writeRegistryError(w, "Failed to add employee", err)
			return
		}
		loaded++
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "loaded": loaded})
}

// recordsEndpoint parses the shared save/load request and resolves the
// format to its adapter pair.
func (h *Handler) recordsEndpoint(w http.ResponseWriter, r *http.Request) (RecordsRequest, records.Saver, records.Loader, bool) {
	var req RecordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return req, nil, nil, false
	}
	if req.Path == "" {
		writeError(w, http.StatusBadRequest, "Path is required", nil)
		return req, nil, nil, false
	}

	switch req.Format {
	case "json":
		return req, records.JSONSaver{}, records.JSONLoader{}, true
	case "csv":
		return req, records.CSVSaver{}, records.CSVLoader{}, true
	default:
		writeError(w, http.StatusBadRequest, "Unknown format (use json or csv)", nil)
		return req, nil, nil, false
	}
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeRegistryError maps registry errors onto HTTP statuses.
func writeRegistryError(w http.ResponseWriter, message string, err error) {
	switch {
	case payroll.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case payroll.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
