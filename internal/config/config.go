// Package config loads simulation settings from a YAML file, falling back
// to defaults when no file is present.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GalaxyConfig sizes the generated galaxy.
type GalaxyConfig struct {
	Sectors          int `yaml:"sectors"`
	PlanetsPerSector int `yaml:"planets_per_sector"`
}

// Config holds all tunable run settings.
type Config struct {
	Seed         int64        `yaml:"seed"`
	Turns        int          `yaml:"turns"`
	DatabasePath string       `yaml:"database_path"`
	ScienceFocus string       `yaml:"science_focus"` // domain name, empty for none
	Galaxy       GalaxyConfig `yaml:"galaxy"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Seed:         42,
		Turns:        20,
		DatabasePath: "data/starhold.db",
		Galaxy: GalaxyConfig{
			Sectors:          3,
			PlanetsPerSector: 4,
		},
	}
}

// Load reads a config file, layering it over the defaults. A missing file
// is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Turns < 0 {
		return fmt.Errorf("turns must be non-negative, got %d", c.Turns)
	}
	if c.Galaxy.Sectors < 1 {
		return fmt.Errorf("galaxy.sectors must be at least 1, got %d", c.Galaxy.Sectors)
	}
	if c.Galaxy.PlanetsPerSector < 1 {
		return fmt.Errorf("galaxy.planets_per_sector must be at least 1, got %d", c.Galaxy.PlanetsPerSector)
	}
	return nil
}
