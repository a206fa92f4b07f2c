/*
Package payroll provides the core compensation engine.

PURPOSE:
  This package contains the domain types and algorithms for computing
  periodic employee compensation: pluggable payment and bonus schemes,
  the employee/department relationships they operate on, and the
  plan-distribution algorithm that spreads a department's monthly
  target across its staff.

KEY CONCEPTS IN THIS FILE (types.go):
  - MonthKey: A pay period identifier of the form "2024-05"
  - Decimal helpers: All money and production figures are decimals

DESIGN PRINCIPLES:
  1. Totality: Every calculation is defined for every input. A missing
     month, a zero plan, or an empty department never produces an error,
     only a deterministic fallback value.
  2. Precision: Uses decimal.Decimal so that "10% of base" is exact.
  3. Closed variants: Payment and bonus schemes are a fixed, known set
     identified by code tags. Call sites are exhaustive over them.
  4. Boundary validation: MonthKey format and numeric parsing are
     checked where data enters the system, never inside calculations.

USAGE:
  month := payroll.MustMonthKey("2024-05")
  base := payroll.NewFigure(2000)
  salary := emp.CalculateSalary(month)

SEE ALSO:
  - bonus.go: Bonus scheme variants
  - payment.go: Payment scheme variants
  - employee.go, department.go: The entities schemes operate on
*/
package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONTH KEY - Pay period identifier ("YYYY-MM")
// =============================================================================

// MonthKey identifies a pay period. The canonical form is "YYYY-MM".
// Lookups with a month that has no recorded data yield zero; only
// boundary code (parsers, handlers) validates the format.
type MonthKey string

const monthKeyLayout = "2006-01"

// ParseMonthKey validates s and returns it as a MonthKey.
func ParseMonthKey(s string) (MonthKey, error) {
	if _, err := time.Parse(monthKeyLayout, s); err != nil {
		return "", fmt.Errorf("invalid month %q (use YYYY-MM): %w", s, err)
	}
	return MonthKey(s), nil
}

// MustMonthKey is ParseMonthKey for compile-time-known keys. Panics on
// malformed input; intended for tests and fixtures.
func MustMonthKey(s string) MonthKey {
	m, err := ParseMonthKey(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m MonthKey) String() string { return string(m) }

// =============================================================================
// FIGURES - Money and production quantities
// =============================================================================

// NewFigure builds a decimal from a float. Used at boundaries where
// values arrive as JSON numbers or parsed CSV fields.
func NewFigure(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// Scheme percentage constants. Exact decimal values, not float approximations.
var (
	percentOfBase   = decimal.NewFromFloat(0.10)
	planPerformance = decimal.NewFromFloat(0.20)
)
