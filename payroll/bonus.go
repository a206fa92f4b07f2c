/*
bonus.go - Bonus scheme variants

PURPOSE:
  A BonusScheme computes the bonus component of one month's pay from the
  employee's base rate, the department's plan for the month, and the
  employee's recorded production. Schemes are pure functions: no state
  beyond their own configuration, no error conditions, deterministic.

VARIANTS:
  FixedBonus:          A configured fixed amount, independent of plan/actual
  PercentOfBaseBonus:  10% of the base rate
  PlanPerformanceBonus: 20% of base, scaled by actual/plan. Zero when the
                       plan is zero - no plan means no plan-based bonus.

The variant set is closed. Each scheme carries a BonusCode so the
selection can be persisted and rebuilt (see factory package).
*/
package payroll

import "github.com/shopspring/decimal"

// =============================================================================
// BONUS SCHEME CONTRACT
// =============================================================================

// BonusCode identifies a bonus scheme variant on the wire and in storage.
type BonusCode string

const (
	BonusFixed           BonusCode = "fixed"
	BonusPercentOfBase   BonusCode = "percent_of_base"
	BonusPlanPerformance BonusCode = "plan_performance"
)

// BonusScheme computes a bonus amount. Implementations are pure and
// total: defined for every input including plan == 0.
type BonusScheme interface {
	// CalculateBonus returns the bonus for the given base rate, monthly
	// plan and actual production.
	CalculateBonus(base, plan, actual decimal.Decimal) decimal.Decimal

	// Code returns the variant tag for persistence.
	Code() BonusCode
}

// Compile-time checks that all variants implement BonusScheme.
var (
	_ BonusScheme = FixedBonus{}
	_ BonusScheme = PercentOfBaseBonus{}
	_ BonusScheme = PlanPerformanceBonus{}
)

// =============================================================================
// FIXED BONUS
// =============================================================================

// FixedBonus pays a configured amount regardless of plan or production.
// A zero-amount FixedBonus is the "no bonus" scheme.
type FixedBonus struct {
	Amount decimal.Decimal
}

func (b FixedBonus) CalculateBonus(base, plan, actual decimal.Decimal) decimal.Decimal {
	return b.Amount
}

func (b FixedBonus) Code() BonusCode { return BonusFixed }

// =============================================================================
// PERCENT OF BASE
// =============================================================================

// PercentOfBaseBonus pays 10% of the base rate.
type PercentOfBaseBonus struct{}

func (PercentOfBaseBonus) CalculateBonus(base, plan, actual decimal.Decimal) decimal.Decimal {
	return base.Mul(percentOfBase)
}

func (PercentOfBaseBonus) Code() BonusCode { return BonusPercentOfBase }

// =============================================================================
// PLAN PERFORMANCE
// =============================================================================

// PlanPerformanceBonus pays 20% of the base rate scaled by plan
// fulfilment (actual/plan). When the plan is zero there is nothing to
// fulfil and the bonus is zero.
type PlanPerformanceBonus struct{}

func (PlanPerformanceBonus) CalculateBonus(base, plan, actual decimal.Decimal) decimal.Decimal {
	if plan.IsZero() {
		return decimal.Zero
	}
	return base.Mul(planPerformance).Mul(actual).Div(plan)
}

func (PlanPerformanceBonus) Code() BonusCode { return BonusPlanPerformance }
