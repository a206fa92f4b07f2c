package records

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// =============================================================================
// JSON ADAPTER - Full records, pretty-printed
// =============================================================================

// JSONLoader reads a JSON array of employee records.
type JSONLoader struct{}

var _ Loader = JSONLoader{}

func (JSONLoader) Load(path string) ([]Employee, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var data []Employee
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	// A record may omit production entirely; normalize to an empty map
	// so downstream code never branches on nil.
	for i := range data {
		if data[i].Production == nil {
			data[i].Production = make(map[string]float64)
		}
	}
	return data, nil
}

// JSONSaver writes employee records as a pretty-printed JSON array.
type JSONSaver struct{}

var _ Saver = JSONSaver{}

func (JSONSaver) Save(path string, data []Employee) error {
	raw, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
