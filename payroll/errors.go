/*
errors.go - Centralized error types for the payroll engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Calculations themselves are total and never fail; errors live at the
  boundary: registry lookups, scheme selection, record parsing.

ERROR CATEGORIES:
  1. Lookup errors - department/employee name not found
  2. Selection errors - unknown payment/bonus scheme code
  3. Input errors - malformed records, non-numeric fields

USAGE:
  Boundary packages wrap these with context:

    if errors.Is(err, payroll.ErrDepartmentNotFound) {
        // report and let the caller retry
    }
*/
package payroll

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrDepartmentNotFound is returned when an operation names a
	// department the registry does not know. Non-fatal: the operation
	// is rejected without mutating state and the caller may retry.
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrDepartmentExists is returned when creating a department whose
	// name is already registered.
	ErrDepartmentExists = errors.New("department already exists")

	// ErrUnknownScheme is returned when a payment or bonus scheme code
	// does not match any known variant.
	ErrUnknownScheme = errors.New("unknown scheme")

	// ErrMalformedRecord is returned when a persisted record is missing
	// required fields or carries non-numeric values.
	ErrMalformedRecord = errors.New("malformed record")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// DepartmentNotFoundError names the department that was looked up.
type DepartmentNotFoundError struct {
	Name string
}

func (e *DepartmentNotFoundError) Error() string {
	return fmt.Sprintf("department %q not found", e.Name)
}

func (e *DepartmentNotFoundError) Unwrap() error { return ErrDepartmentNotFound }

// UnknownSchemeError names the rejected code and which scheme kind it
// was offered for.
type UnknownSchemeError struct {
	Kind string // "payment" or "bonus"
	Code string
}

func (e *UnknownSchemeError) Error() string {
	return fmt.Sprintf("unknown %s scheme %q", e.Kind, e.Code)
}

func (e *UnknownSchemeError) Unwrap() error { return ErrUnknownScheme }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound returns true if the error indicates a missing entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDepartmentNotFound)
}

// IsClientError returns true if the error is due to invalid caller
// input rather than an engine failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnknownScheme) ||
		errors.Is(err, ErrMalformedRecord) ||
		errors.Is(err, ErrDepartmentExists)
}
