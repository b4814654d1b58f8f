package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Rows        int `yaml:"rows"`
	Cols        int `yaml:"cols"`
	MinWalls    int `yaml:"min_walls"`
	MaxWalls    int `yaml:"max_walls"`
	MinNumbered int `yaml:"min_numbered"`
	MaxNumbered int `yaml:"max_numbered"`
	MaxAttempts int `yaml:"max_attempts"`
}

// DefaultConfig matches the classic 7x7 puzzle: 8-10 spaced walls, 4-5
// of them numbered, 50 generation attempts.
func DefaultConfig() Config {
	return Config{
		Rows:        7,
		Cols:        7,
		MinWalls:    8,
		MaxWalls:    10,
		MinNumbered: 4,
		MaxNumbered: 5,
		MaxAttempts: 50,
	}
}

func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("invalid board size %dx%d", c.Rows, c.Cols)
	}
	if c.MinWalls < 0 || c.MaxWalls < c.MinWalls {
		return fmt.Errorf("invalid wall range [%d, %d]", c.MinWalls, c.MaxWalls)
	}
	if c.MinNumbered < 0 || c.MaxNumbered < c.MinNumbered {
		return fmt.Errorf("invalid numbered range [%d, %d]", c.MinNumbered, c.MaxNumbered)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be positive (got %d)", c.MaxAttempts)
	}
	return nil
}

// LoadConfig reads a YAML parameters file; absent keys keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading generator config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing generator config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
