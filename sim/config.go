package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StoreConfig holds the line layout of a store, loadable from a YAML or JSON file.
// Every line gets the same capacity; lines are laid out regular, then express,
// then self-serve.
type StoreConfig struct {
	LineCapacity   int `yaml:"line_capacity"`
	RegularCount   int `yaml:"regular_count"`
	ExpressCount   int `yaml:"express_count"`
	SelfServeCount int `yaml:"self_serve_count"`
}

// NumLines returns the total number of lines the config describes.
func (c StoreConfig) NumLines() int {
	return c.RegularCount + c.ExpressCount + c.SelfServeCount
}

// Validate checks that the capacity is positive and all counts are non-negative.
func (c StoreConfig) Validate() error {
	if c.LineCapacity <= 0 {
		return fmt.Errorf("line_capacity must be positive, got %d", c.LineCapacity)
	}
	if c.RegularCount < 0 {
		return fmt.Errorf("regular_count must be non-negative, got %d", c.RegularCount)
	}
	if c.ExpressCount < 0 {
		return fmt.Errorf("express_count must be non-negative, got %d", c.ExpressCount)
	}
	if c.SelfServeCount < 0 {
		return fmt.Errorf("self_serve_count must be non-negative, got %d", c.SelfServeCount)
	}
	return nil
}

// LoadStoreConfig reads and validates a store configuration file.
// JSON files are accepted as-is since JSON is valid YAML.
// Unknown keys are rejected so typos surface as errors.
func LoadStoreConfig(path string) (StoreConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StoreConfig{}, fmt.Errorf("reading store config: %w", err)
	}
	return ParseStoreConfig(data)
}

// ParseStoreConfig decodes and validates store configuration bytes.
func ParseStoreConfig(data []byte) (StoreConfig, error) {
	var cfg StoreConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return StoreConfig{}, fmt.Errorf("parsing store config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return StoreConfig{}, fmt.Errorf("invalid store config: %w", err)
	}
	return cfg, nil
}
