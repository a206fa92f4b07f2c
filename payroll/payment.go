/*
payment.go - Payment scheme variants

PURPOSE:
  A PaymentScheme computes total salary from the base rate, an already
  resolved bonus figure, the monthly plan and the actual production.
  The bonus is resolved by the caller (normally Employee.CalculateSalary
  invoking the employee's BonusScheme), so payment schemes never need to
  know which bonus variant produced it.

VARIANTS:
  FixedSalaryWithBonus:       base + bonus
  PercentProductionWithBonus: actual * base + bonus
  PercentPlanWithBonus:       (actual/plan) * base + bonus

TOTALITY:
  Every variant is defined at plan == 0: the plan-based component simply
  contributes nothing. PercentPlanWithBonus degenerates to the bonus
  alone. This mirrors the bonus-side guard in PlanPerformanceBonus.
*/
package payroll

import "github.com/shopspring/decimal"

// =============================================================================
// PAYMENT SCHEME CONTRACT
// =============================================================================

// PaymentCode identifies a payment scheme variant on the wire and in storage.
type PaymentCode string

const (
	PaymentFixedSalary       PaymentCode = "fixed_salary"
	PaymentPercentProduction PaymentCode = "percent_production"
	PaymentPercentPlan       PaymentCode = "percent_plan"
)

// PaymentScheme computes a total salary. Implementations are pure and
// total: defined for every input including plan == 0.
type PaymentScheme interface {
	// Calculate returns the salary for the given base rate, resolved
	// bonus, monthly plan and actual production.
	Calculate(base, bonus, plan, actual decimal.Decimal) decimal.Decimal

	// Code returns the variant tag for persistence.
	Code() PaymentCode
}

// Compile-time checks that all variants implement PaymentScheme.
var (
	_ PaymentScheme = FixedSalaryWithBonus{}
	_ PaymentScheme = PercentProductionWithBonus{}
	_ PaymentScheme = PercentPlanWithBonus{}
)

// =============================================================================
// FIXED SALARY
// =============================================================================

// FixedSalaryWithBonus pays the base rate plus bonus. Production and
// plan do not affect the result.
type FixedSalaryWithBonus struct{}

func (FixedSalaryWithBonus) Calculate(base, bonus, plan, actual decimal.Decimal) decimal.Decimal {
	return base.Add(bonus)
}

func (FixedSalaryWithBonus) Code() PaymentCode { return PaymentFixedSalary }

// =============================================================================
// PERCENT OF PRODUCTION
// =============================================================================

// PercentProductionWithBonus pays per unit produced: each unit of
// actual production earns the base rate once.
type PercentProductionWithBonus struct{}

func (PercentProductionWithBonus) Calculate(base, bonus, plan, actual decimal.Decimal) decimal.Decimal {
	return actual.Mul(base).Add(bonus)
}

func (PercentProductionWithBonus) Code() PaymentCode { return PaymentPercentProduction }

// =============================================================================
// PERCENT OF PLAN
// =============================================================================

// PercentPlanWithBonus pays the base rate scaled by plan fulfilment
// (actual/plan). With no plan set for the month only the bonus is paid.
type PercentPlanWithBonus struct{}

func (PercentPlanWithBonus) Calculate(base, bonus, plan, actual decimal.Decimal) decimal.Decimal {
	if plan.IsZero() {
		return bonus
	}
	return actual.Div(plan).Mul(base).Add(bonus)
}

func (PercentPlanWithBonus) Code() PaymentCode { return PaymentPercentPlan }
