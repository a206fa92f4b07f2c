/*
Package records provides the flat persistence format for employees.

PURPOSE:
  The engine exchanges plain records with its load/save collaborators.
  A record is the flattened view of one employee: identity, department
  name, base rate, scheme selection and the per-month production map.
  Conversion between records and live entities lives in the factory
  package; this package only defines the record shape and the JSON/CSV
  adapters that read and write it.

FORMATS:
  JSON (json.go): full record including production and scheme tags,
    pretty-printed with 4-space indentation.
  CSV (csv.go): simplified record without production; scheme selection
    is not carried and reload defaults apply.

SEE ALSO:
  - factory/scheme.go: record <-> entity conversion
*/
package records

// Employee is the flat persisted form of a payroll employee.
//
// PaymentScheme and BonusScheme hold the variant code tags. They are
// written by the JSON saver so that a reload restores the selection;
// the CSV format does not carry them, and loaders leave them empty so
// the factory applies the simplified-reload defaults.
type Employee struct {
	Name          string             `json:"name"`
	Position      string             `json:"position"`
	Department    string             `json:"department"`
	BaseSalary    float64            `json:"base_salary"`
	Bonus         float64            `json:"bonus,omitempty"`
	PaymentScheme string             `json:"payment_scheme,omitempty"`
	BonusScheme   string             `json:"bonus_scheme,omitempty"`
	Production    map[string]float64 `json:"production,omitempty"`
}

// Loader reads employee records from a file.
type Loader interface {
	Load(path string) ([]Employee, error)
}

// Saver writes employee records to a file.
type Saver interface {
	Save(path string, data []Employee) error
}
