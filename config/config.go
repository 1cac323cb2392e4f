// Package config loads the routenet YAML configuration.
//
// A missing file is not an error: Load returns Default() so the CLI works with
// no setup. Empty fields in a present file fall back to their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrBadConfig is returned when the file parses but holds an unsupported value.
var ErrBadConfig = errors.New("config: invalid configuration")

// Color modes for Output.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the top-level document.
type Config struct {
	// DataFile is the route network text file (city count, city names, route tuples).
	DataFile string `yaml:"data_file"`

	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

type OutputConfig struct {
	// Color is auto (styled only on a terminal), always or never.
	Color string `yaml:"color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataFile: "airline_data.txt",
		Log:      LogConfig{Level: "info", Format: "text"},
		Output:   OutputConfig{Color: ColorAuto},
	}
}

// Load reads path and overlays it on Default(). An empty path or a missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrBadConfig, path, err)
	}
	cfg.fillDefaults()

	return cfg, cfg.Validate()
}

// Save writes cfg as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrBadConfig, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrBadConfig, c.Log.Format)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: output.color %q", ErrBadConfig, c.Output.Color)
	}

	return nil
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.DataFile == "" {
		c.DataFile = d.DataFile
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if c.Output.Color == "" {
		c.Output.Color = d.Output.Color
	}
}
