/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:

	Provides pre-built scenarios that populate the registry with realistic
	data for testing and demos. Each scenario creates departments and
	employees, sets monthly plans, and distributes them so that salary
	calculation has something to show immediately.

AVAILABLE SCENARIOS:

	sales-office:  Salaried manager plus production-paid reps
	factory-floor: Plan-paid assembly line with a distributed target
	mixed-org:     Both departments in one registry

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "factory-floor"}

NOTE:

	Scenarios seed into the live registry. Loading one twice conflicts on
	department names. Only use in development/demo environments.

SEE ALSO:
  - handlers.go: writeError/writeJSON helpers
  - factory/scheme.go: Scheme code parsing
*/
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "sales-office",
		Name:        "Sales Office",
		Description: "Salaried manager with a base-percentage bonus plus production-paid reps",
	},
	{
		ID:          "factory-floor",
		Name:        "Factory Floor",
		Description: "Plan-paid assembly line with a monthly target already distributed",
	},
	{
		ID:          "mixed-org",
		Name:        "Mixed Organization",
		Description: "Sales office and factory floor together",
	},
}

// demoMonth is the month all scenarios seed plans and production for.
var demoMonth = payroll.MustMonthKey("2024-05")

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// LoadScenario seeds a predefined scenario into the registry.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ScenarioID string `json:"scenario_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := r.Context()
	var err error
	switch req.ScenarioID {
	case "sales-office":
		err = h.loadSalesOffice(ctx)
	case "factory-floor":
		err = h.loadFactoryFloor(ctx)
	case "mixed-org":
		if err = h.loadSalesOffice(ctx); err == nil {
			err = h.loadFactoryFloor(ctx)
		}
	default:
		writeError(w, http.StatusBadRequest, "Unknown scenario", nil)
		return
	}
	if err != nil {
		writeRegistryError(w, "Failed to load scenario", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "scenario": req.ScenarioID, "month": demoMonth.String()})
}

// =============================================================================
// SCENARIO LOADERS
// =============================================================================

// loadSalesOffice builds a department where the manager draws a fixed
// salary with a 10% bonus and the reps are paid per unit produced.
func (h *Handler) loadSalesOffice(ctx context.Context) error {
	if _, err := h.Registry.CreateDepartment(ctx, "Sales"); err != nil {
		return err
	}

	manager := payroll.NewEmployee("Oksana", "Sales Manager", payroll.NewFigure(2000),
		payroll.FixedSalaryWithBonus{}, payroll.PercentOfBaseBonus{})
	manager.Role = payroll.RoleManager
	if err := h.Registry.AddEmployee(ctx, "Sales", manager); err != nil {
		return err
	}

	reps := []struct {
		name string
		rate float64
		sold float64
	}{
		{"Andrii", 5, 80},
		{"Iryna", 5, 120},
	}
	for _, rep := range reps {
		e := payroll.NewEmployee(rep.name, "Sales Rep", payroll.NewFigure(rep.rate),
			payroll.PercentProductionWithBonus{}, payroll.FixedBonus{Amount: payroll.NewFigure(50)})
		e.SetProduction(demoMonth, payroll.NewFigure(rep.sold))
		if err := h.Registry.AddEmployee(ctx, "Sales", e); err != nil {
			return err
		}
	}
	return nil
}

// loadFactoryFloor builds a plan-paid line and distributes the target
// so every fitter starts with an even share.
func (h *Handler) loadFactoryFloor(ctx context.Context) error {
	if _, err := h.Registry.CreateDepartment(ctx, "Assembly"); err != nil {
		return err
	}

	for _, name := range []string{"Bohdan", "Kateryna", "Mykola", "Sofiia"} {
		e := payroll.NewEmployee(name, "Fitter", payroll.NewFigure(1000),
			payroll.PercentPlanWithBonus{}, payroll.PlanPerformanceBonus{})
		if err := h.Registry.AddEmployee(ctx, "Assembly", e); err != nil {
			return err
		}
	}

	if err := h.Registry.SetPlan(ctx, "Assembly", demoMonth, payroll.NewFigure(1000)); err != nil {
		return err
	}
	return h.Registry.DistributePlan(ctx, "Assembly", demoMonth)
}
