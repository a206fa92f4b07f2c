package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// CSV ADAPTER - Simplified records, no production column
// =============================================================================

// csvHeader is the fixed column set. Every record carries the same
// fields, which keeps the header well-defined for any record sequence.
var csvHeader = []string{"name", "position", "department", "base_salary", "bonus"}

// CSVLoader reads employee records from a headered CSV file. Numeric
// fields arrive as strings and are parsed here; rows missing required
// fields are rejected as malformed.
type CSVLoader struct{}

var _ Loader = CSVLoader{}

func (CSVLoader) Load(path string) ([]Employee, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[name] = i
	}
	for _, required := range []string{"name", "position", "department", "base_salary"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", payroll.ErrMalformedRecord, required)
		}
	}

	data := make([]Employee, 0, len(rows)-1)
	for n, row := range rows[1:] {
		base, err := strconv.ParseFloat(row[col["base_salary"]], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: base_salary %q is not a number", payroll.ErrMalformedRecord, n+2, row[col["base_salary"]])
		}
		rec := Employee{
			Name:       row[col["name"]],
			Position:   row[col["position"]],
			Department: row[col["department"]],
			BaseSalary: base,
			Production: make(map[string]float64),
		}
		if i, ok := col["bonus"]; ok && row[i] != "" {
			bonus, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: bonus %q is not a number", payroll.ErrMalformedRecord, n+2, row[i])
			}
			rec.Bonus = bonus
		}
		if rec.Name == "" {
			return nil, fmt.Errorf("%w: row %d: empty name", payroll.ErrMalformedRecord, n+2)
		}
		data = append(data, rec)
	}
	return data, nil
}

// CSVSaver writes employee records with a header row. An empty record
// sequence is rejected: with no first record there is no schema to
// derive a header from.
type CSVSaver struct{}

var _ Saver = CSVSaver{}

func (CSVSaver) Save(path string, data []Employee) error {
	if len(data) == 0 {
		return errors.New("no records to save")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, rec := range data {
		row := []string{
			rec.Name,
			rec.Position,
			rec.Department,
			strconv.FormatFloat(rec.BaseSalary, 'f', -1, 64),
			strconv.FormatFloat(rec.Bonus, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}
