package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	minArity = 2
	maxArity = 9
)

// Config is the content of the zipgen YAML file.
// Output paths are relative to the directory of the config file.
type Config struct {
	Package     string `yaml:"package"`
	Arities     []int  `yaml:"arities"`
	ZipOutput   string `yaml:"zipOutput"`
	TupleOutput string `yaml:"tupleOutput"`
}

func loadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	baseDir := filepath.Dir(path)
	cfg.ZipOutput = filepath.Join(baseDir, cfg.ZipOutput)
	cfg.TupleOutput = filepath.Join(baseDir, cfg.TupleOutput)
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Package == "" {
		return errors.New("package is required")
	}
	if c.ZipOutput == "" || c.TupleOutput == "" {
		return errors.New("zipOutput and tupleOutput are required")
	}
	if len(c.Arities) == 0 {
		return errors.New("at least one arity is required")
	}
	for _, a := range c.Arities {
		if a < minArity || a > maxArity {
			return fmt.Errorf("arity %d out of range [%d, %d]", a, minArity, maxArity)
		}
	}
	sorted := slices.Clone(c.Arities)
	slices.Sort(sorted)
	if len(slices.Compact(sorted)) != len(c.Arities) {
		return fmt.Errorf("duplicate arity in %v", c.Arities)
	}
	c.Arities = sorted
	return nil
}
