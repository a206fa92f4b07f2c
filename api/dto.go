/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - records/records.go: The persisted record shape
*/
package api

import (
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	Name       string             `json:"name"`
	Position   string             `json:"position"`
	Role       string             `json:"role"`
	Department string             `json:"department"`
	BaseSalary float64            `json:"base_salary"`
	Payment    string             `json:"payment_scheme"`
	Bonus      string             `json:"bonus_scheme"`
	Production map[string]float64 `json:"production,omitempty"`
}

// CreateEmployeeRequest is the request to create an employee.
type CreateEmployeeRequest struct {
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	Department  string  `json:"department"`
	BaseSalary  float64 `json:"base_salary"`
	Payment     string  `json:"payment_scheme"`
	Bonus       string  `json:"bonus_scheme"`
	BonusAmount float64 `json:"bonus_amount,omitempty"`
	Manager     bool    `json:"manager,omitempty"`
}

// DepartmentDTO represents a department in API responses.
type DepartmentDTO struct {
	Name      string             `json:"name"`
	Manager   string             `json:"manager,omitempty"`
	Employees int                `json:"employees"`
	Plan      map[string]float64 `json:"plan,omitempty"`
}

// CreateDepartmentRequest is the request to create a department.
type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

// SetPlanRequest sets a department's production target for one month.
type SetPlanRequest struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// DistributePlanRequest names the month whose target to distribute.
type DistributePlanRequest struct {
	Month string `json:"month"`
}

// SalaryLineDTO is one employee's computed salary for a month.
type SalaryLineDTO struct {
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
}

// RecordsRequest is the request to save or load employee records.
type RecordsRequest struct {
	Path   string `json:"path"`
	Format string `json:"format"` // "json" or "csv"
}

// ScenarioDTO describes one loadable demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toEmployeeDTO(e *payroll.Employee) EmployeeDTO {
	dto := EmployeeDTO{
		Name:       e.Name,
		Position:   e.Position,
		Role:       string(e.Role),
		Department: e.DepartmentName(),
		Production: make(map[string]float64, len(e.Production)),
	}
	dto.BaseSalary, _ = e.BaseSalary.Float64()
	if e.Payment != nil {
		dto.Payment = string(e.Payment.Code())
	}
	if e.Bonus != nil {
		dto.Bonus = string(e.Bonus.Code())
	}
	for m, v := range e.Production {
		dto.Production[string(m)], _ = v.Float64()
	}
	return dto
}

func toDepartmentDTO(d *payroll.Department) DepartmentDTO {
	dto := DepartmentDTO{
		Name:      d.Name,
		Employees: d.Size(),
		Plan:      make(map[string]float64, len(d.Plan)),
	}
	if d.Manager != nil {
		dto.Manager = d.Manager.Name
	}
	for m, v := range d.Plan {
		dto.Plan[string(m)], _ = v.Float64()
	}
	return dto
}
