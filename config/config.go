// Package config loads the yangvalidate CLI's configuration file: search
// path entries for future cross-module resolution, strictness toggles, and
// the logging sub-configuration from package yanglog.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/gkantsidis/yangparse/yanglog"
)

// Config is the on-disk shape of the yangvalidate configuration file.
type Config struct {
	// SearchPath lists directories to search for imported/included
	// modules. Recorded as given: Load does not check the entries, and the
	// parser does not consume them, since cross-module import/include
	// resolution is out of scope (spec.md non-goals; SPEC_FULL.md section 6
	// decision 2).
	SearchPath []string `yaml:"search_path"`

	// Strict, when true, turns resolver warnings (unresolved typedef/
	// grouping references) into hard errors at the CLI layer.
	Strict bool `yaml:"strict"`

	Log yanglog.Config `yaml:"log"`
}

// Default returns the zero-value configuration used when no config file is
// given: lenient, no search path, info/logfmt logging.
func Default() *Config {
	return &Config{
		Log: *yanglog.NewConfig(),
	}
}

// Load reads and parses the YAML configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
