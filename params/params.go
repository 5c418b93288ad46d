// Package params loads the parameter tables that drive batch part
// generation. A table is a YAML file with a units header and one row
// per part to generate.
package params

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// GaugeBlock is one row of a gauge block table. Dimensions are in the
// table's units.
type GaugeBlock struct {
	Label     string  `yaml:"label"`
	Length    float64 `yaml:"length"`
	Width     float64 `yaml:"width"`
	Thickness float64 `yaml:"thickness"`
}

// SafeLabel returns the label with path separators replaced so it can
// name an output directory.
func (b GaugeBlock) SafeLabel() string {
	r := strings.NewReplacer("/", "_", "\\", "_")
	return r.Replace(b.Label)
}

// Table is a batch generation table.
type Table struct {
	// Units is a scale factor name: "mm" or "in".
	Units  string       `yaml:"units"`
	Blocks []GaugeBlock `yaml:"blocks"`
}

// Scale returns the multiplier from table units to millimeters.
func (t *Table) Scale() float64 {
	if t.Units == "in" {
		return 25.4
	}
	return 1
}

// Load reads and validates a table file.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates table bytes.
func Parse(raw []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}
	if t.Units != "" && t.Units != "mm" && t.Units != "in" {
		return nil, fmt.Errorf("params: unsupported units %q", t.Units)
	}
	if len(t.Blocks) == 0 {
		return nil, fmt.Errorf("params: table has no rows")
	}
	for i, b := range t.Blocks {
		if err := b.validate(); err != nil {
			return nil, fmt.Errorf("params: row %d: %w", i+1, err)
		}
	}
	return &t, nil
}

func (b GaugeBlock) validate() error {
	if strings.TrimSpace(b.Label) == "" {
		return fmt.Errorf("missing label")
	}
	if b.Length <= 0 || b.Width <= 0 || b.Thickness <= 0 {
		return fmt.Errorf("%s: dimensions must be positive", b.Label)
	}
	return nil
}
