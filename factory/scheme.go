/*
Package factory converts wire codes and flat records into core types.

PURPOSE:
  Scheme selection arrives from outside the engine as string codes (HTTP
  payloads, persisted records). This package maps codes onto the closed
  variant sets in the payroll package and converts between flat
  employee records and live entities. All boundary parsing concentrates
  here: an unknown code or a malformed record is rejected before any
  state is touched.

RELOAD DEFAULTS:
  Records without scheme tags (the CSV format, or JSON written by older
  savers) reload as FixedSalaryWithBonus with a FixedBonus of the
  record's bonus amount. The scheme selection is therefore only
  round-tripped when the saver wrote the tags.

USAGE:
  payment, err := factory.ParsePaymentScheme("percent_plan")
  bonus, err := factory.ParseBonusScheme("fixed", payroll.NewFigure(300))
  emp, dept, err := factory.EmployeeFromRecord(rec)
*/
package factory

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/records"
)

// =============================================================================
// SCHEME CODES
// =============================================================================

// ParsePaymentScheme maps a code onto a payment scheme variant.
func ParsePaymentScheme(code string) (payroll.PaymentScheme, error) {
	switch payroll.PaymentCode(code) {
	case payroll.PaymentFixedSalary:
		return payroll.FixedSalaryWithBonus{}, nil
	case payroll.PaymentPercentProduction:
		return payroll.PercentProductionWithBonus{}, nil
	case payroll.PaymentPercentPlan:
		return payroll.PercentPlanWithBonus{}, nil
	default:
		return nil, &payroll.UnknownSchemeError{Kind: "payment", Code: code}
	}
}

// ParseBonusScheme maps a code onto a bonus scheme variant. The amount
// is only meaningful for the fixed variant and ignored otherwise.
func ParseBonusScheme(code string, amount decimal.Decimal) (payroll.BonusScheme, error) {
	switch payroll.BonusCode(code) {
	case payroll.BonusFixed:
		return payroll.FixedBonus{Amount: amount}, nil
	case payroll.BonusPercentOfBase:
		return payroll.PercentOfBaseBonus{}, nil
	case payroll.BonusPlanPerformance:
		return payroll.PlanPerformanceBonus{}, nil
	default:
		return nil, &payroll.UnknownSchemeError{Kind: "bonus", Code: code}
	}
}

// =============================================================================
// RECORD CONVERSION
// =============================================================================

// EmployeeFromRecord rebuilds an employee from its flat record and
// returns it with the department name it belongs under. The employee is
// not attached to a department here; registries do that.
func EmployeeFromRecord(rec records.Employee) (*payroll.Employee, string, error) {
	if rec.Name == "" {
		return nil, "", fmt.Errorf("%w: empty name", payroll.ErrMalformedRecord)
	}
	if rec.BaseSalary < 0 {
		return nil, "", fmt.Errorf("%w: negative base salary %v", payroll.ErrMalformedRecord, rec.BaseSalary)
	}

	// Records without tags reload with the simplified defaults.
	paymentCode := rec.PaymentScheme
	if paymentCode == "" {
		paymentCode = string(payroll.PaymentFixedSalary)
	}
	bonusCode := rec.BonusScheme
	if bonusCode == "" {
		bonusCode = string(payroll.BonusFixed)
	}

	payment, err := ParsePaymentScheme(paymentCode)
	if err != nil {
		return nil, "", err
	}
	bonus, err := ParseBonusScheme(bonusCode, payroll.NewFigure(rec.Bonus))
	if err != nil {
		return nil, "", err
	}

	e := payroll.NewEmployee(rec.Name, rec.Position, payroll.NewFigure(rec.BaseSalary), payment, bonus)
	for m, v := range rec.Production {
		month, err := payroll.ParseMonthKey(m)
		if err != nil {
			return nil, "", fmt.Errorf("%w: production month %q", payroll.ErrMalformedRecord, m)
		}
		e.SetProduction(month, payroll.NewFigure(v))
	}
	return e, rec.Department, nil
}

// EmployeeToRecord flattens an employee into its persisted form,
// including the scheme tags so a JSON save round-trips the selection.
func EmployeeToRecord(e *payroll.Employee) records.Employee {
	rec := records.Employee{
		Name:       e.Name,
		Position:   e.Position,
		Department: e.DepartmentName(),
		Production: make(map[string]float64, len(e.Production)),
	}
	rec.BaseSalary, _ = e.BaseSalary.Float64()

	if e.Payment != nil {
		rec.PaymentScheme = string(e.Payment.Code())
	}
	if e.Bonus != nil {
		rec.BonusScheme = string(e.Bonus.Code())
		if fixed, ok := e.Bonus.(payroll.FixedBonus); ok {
			rec.Bonus, _ = fixed.Amount.Float64()
		}
	}
	for m, v := range e.Production {
		rec.Production[string(m)], _ = v.Float64()
	}
	return rec
}
