package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name in a project directory.
const FileName = "solde.yaml"

// Config represents the top-level solde.yaml configuration.
type Config struct {
	DataDir string       `yaml:"data_dir"`
	Import  ImportConfig `yaml:"import"`
	// SeedOnInit controls whether a fresh data dir starts with the
	// default accounts and categories.
	SeedOnInit bool `yaml:"seed_on_init"`
}

// ImportConfig holds defaults for the spreadsheet import pipeline.
type ImportConfig struct {
	// InvertSign flips the sign of every imported amount, for banks
	// that export debits as positive numbers.
	InvertSign bool `yaml:"invert_sign"`
}

// Load reads a solde.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	return &cfg, nil
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

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		DataDir:    "data",
		SeedOnInit: true,
	}
}
