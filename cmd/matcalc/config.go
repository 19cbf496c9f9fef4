package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bradybhalla/matrixcalc/codec"
	"github.com/bradybhalla/matrixcalc/matrix"
)

// Config carries the tunables a user can pin in a YAML file instead of
// repeating flags. Flags always win over file values.
type Config struct {
	// PivotTolerance is the zero-pivot threshold for inv and rref.
	PivotTolerance float64 `yaml:"pivot_tolerance"`
	// Precision is the number of fractional digits in rendered cells.
	Precision int `yaml:"precision"`
	// PlainSpacing disables column alignment in output.
	PlainSpacing bool `yaml:"plain_spacing"`
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		PivotTolerance: matrix.DefaultPivotTolerance,
		Precision:      codec.DefaultPrecision,
		PlainSpacing:   false,
	}
}

// LoadConfig reads a YAML config file, layering its values over the
// defaults so omitted keys keep their default.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
