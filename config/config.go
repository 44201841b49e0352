// Package config holds the settings of the seqcat command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// Config is the file form of the command line settings. Flags given on the
// command line override it.
type Config struct {
	// Data is a YAML catalogue file or a parquet catalogue directory. Empty
	// selects the embedded catalogue.
	Data string `yaml:"data"`
	// Format is the output format of every command. Empty keeps each
	// command's own default.
	Format string `yaml:"format"`
	Color  bool   `yaml:"color" default:"true"`
	Log    Log    `yaml:"log"`
}

type Log struct {
	Level  string `yaml:"level" default:"warn"`
	Format string `yaml:"format" default:"console"`
}

// Default returns a Config with every default applied.
func Default() Config {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		panic(fmt.Sprintf("invalid config defaults: %v", err))
	}
	return cfg
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings that can be checked without the packages
// that consume them.
func (c Config) Validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
