package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func fig(v float64) decimal.Decimal {
	return payroll.NewFigure(v)
}

func assertFig(t *testing.T, want float64, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(fig(want)), "want %v, got %s", want, got)
}

// =============================================================================
// BONUS SCHEME TESTS
// =============================================================================

func TestFixedBonus_IgnoresPlanAndActual(t *testing.T) {
	b := payroll.FixedBonus{Amount: fig(300)}

	assertFig(t, 300, b.CalculateBonus(fig(2000), fig(0), fig(0)))
	assertFig(t, 300, b.CalculateBonus(fig(0), fig(500), fig(700)))
}

func TestPercentOfBaseBonus_TenPercentExactly(t *testing.T) {
	b := payroll.PercentOfBaseBonus{}

	for _, base := range []float64{0, 1, 100, 2000, 333.33} {
		got := b.CalculateBonus(fig(base), fig(999), fig(1))
		assertFig(t, 0.10*base, got)
	}
}

func TestPlanPerformanceBonus_ScalesByFulfilment(t *testing.T) {
	// GIVEN: base=200, plan=100, actual=50 (half the plan achieved)
	// THEN: bonus = 0.20 * 200 * 50/100 = 20
	b := payroll.PlanPerformanceBonus{}

	assertFig(t, 20, b.CalculateBonus(fig(200), fig(100), fig(50)))
	assertFig(t, 40, b.CalculateBonus(fig(200), fig(100), fig(100)))
	// Overfulfilment scales past 20% of base.
	assertFig(t, 80, b.CalculateBonus(fig(200), fig(100), fig(200)))
}

func TestPlanPerformanceBonus_ZeroPlanYieldsZero(t *testing.T) {
	b := payroll.PlanPerformanceBonus{}

	for _, actual := range []float64{0, 1, 1000} {
		assertFig(t, 0, b.CalculateBonus(fig(500), fig(0), fig(actual)))
	}
}

// =============================================================================
// PAYMENT SCHEME TESTS
// =============================================================================

func TestFixedSalaryWithBonus(t *testing.T) {
	s := payroll.FixedSalaryWithBonus{}

	assertFig(t, 2300, s.Calculate(fig(2000), fig(300), fig(0), fig(0)))
	// Plan and actual never contribute.
	assertFig(t, 2300, s.Calculate(fig(2000), fig(300), fig(500), fig(700)))
}

func TestPercentProductionWithBonus(t *testing.T) {
	s := payroll.PercentProductionWithBonus{}

	// 5 units at base rate 100, plus a 10 bonus.
	assertFig(t, 510, s.Calculate(fig(100), fig(10), fig(0), fig(5)))
	// No production, only the bonus.
	assertFig(t, 10, s.Calculate(fig(100), fig(10), fig(0), fig(0)))
}

func TestPercentPlanWithBonus_ScalesByFulfilment(t *testing.T) {
	s := payroll.PercentPlanWithBonus{}

	// Full plan: base + bonus.
	assertFig(t, 1050, s.Calculate(fig(1000), fig(50), fig(200), fig(200)))
	// Half plan: half base + bonus.
	assertFig(t, 550, s.Calculate(fig(1000), fig(50), fig(200), fig(100)))
}

func TestPercentPlanWithBonus_ZeroPlanPaysBonusAlone(t *testing.T) {
	// The plan-based component contributes nothing with no plan set;
	// the scheme stays defined and pays only the bonus.
	s := payroll.PercentPlanWithBonus{}

	assertFig(t, 50, s.Calculate(fig(1000), fig(50), fig(0), fig(100)))
	assertFig(t, 0, s.Calculate(fig(1000), fig(0), fig(0), fig(0)))
}

func TestAllPaymentSchemes_DefinedAtZeroPlan(t *testing.T) {
	schemes := []payroll.PaymentScheme{
		payroll.FixedSalaryWithBonus{},
		payroll.PercentProductionWithBonus{},
		payroll.PercentPlanWithBonus{},
	}

	for _, s := range schemes {
		got := s.Calculate(fig(1000), fig(25), fig(0), fig(13))
		assert.False(t, got.IsNegative(), "%s: negative salary at zero plan", s.Code())
	}
}

// =============================================================================
// CODE TAGS
// =============================================================================

func TestSchemeCodes_AreStable(t *testing.T) {
	// Persisted records depend on these tags; changing them breaks reloads.
	assert.Equal(t, payroll.BonusCode("fixed"), payroll.FixedBonus{}.Code())
	assert.Equal(t, payroll.BonusCode("percent_of_base"), payroll.PercentOfBaseBonus{}.Code())
	assert.Equal(t, payroll.BonusCode("plan_performance"), payroll.PlanPerformanceBonus{}.Code())

	assert.Equal(t, payroll.PaymentCode("fixed_salary"), payroll.FixedSalaryWithBonus{}.Code())
	assert.Equal(t, payroll.PaymentCode("percent_production"), payroll.PercentProductionWithBonus{}.Code())
	assert.Equal(t, payroll.PaymentCode("percent_plan"), payroll.PercentPlanWithBonus{}.Code())
}
