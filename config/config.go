// Package config loads cmd/happydomfmt's YAML configuration file,
// grounded on the teacher pack's "pkg/config" shape (umputun-newscope).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds cmd/happydomfmt's defaults, overridable per-invocation
// by CLI flags.
type Config struct {
	Output struct {
		Pretty     bool `yaml:"pretty"`
		IndentSize int  `yaml:"indent_size"`
	} `yaml:"output"`
}

// Load reads configuration from a YAML file. A missing file is not an
// error — Load returns the defaults (IndentSize 2), since cmd/happydomfmt
// should work with no config file present.
func Load(path string) (*Config, error) {
	var cfg Config
	cfg.Output.IndentSize = 2

	data, err := os.ReadFile(path) //nolint:gosec // path comes from a CLI flag
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
