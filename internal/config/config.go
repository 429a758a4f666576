package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level tracker.yaml configuration. It covers
// the glue around the parser (where imports live, how records are printed);
// the parse pipeline itself takes no configuration.
type Config struct {
	Import ImportConfig `yaml:"import"`
	Output OutputConfig `yaml:"output"`
}

// ImportConfig controls where statement CSVs are picked up.
type ImportConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig controls how parsed transactions are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // "table" or "csv"
}

// Load reads a tracker.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault reads tracker.yaml if it exists, falling back to Default
// when it does not.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Import: ImportConfig{
			Dir: "import",
		},
		Output: OutputConfig{
			Format: "table",
		},
	}
}
