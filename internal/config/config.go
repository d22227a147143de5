// Package config loads runtime settings for the coords binaries.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables prefixed with COORDS_. Nested keys use a double
// underscore in env names, so COORDS_LOG__LEVEL sets log.level.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ironsheep/coord-tools/internal/coords"
)

// EnvPrefix is the prefix for all environment overrides.
const EnvPrefix = "COORDS_"

// PathEnv names the YAML file to load, if any.
const PathEnv = EnvPrefix + "CONFIG"

// Defaults applied by Load when a setting is empty.
const (
	DefaultLogLevel    = "info"
	DefaultLogEncoding = "console"
	DefaultPlotSize    = 256
)

// LogConfig selects the zap level and encoding.
type LogConfig struct {
	Level    string `koanf:"level"`
	Encoding string `koanf:"encoding"` // console|json
}

// PlotConfig controls the demo plot written by cmd/coords.
type PlotConfig struct {
	Path string `koanf:"path"` // empty disables plotting
	Size int    `koanf:"size"`
}

// MetricsConfig controls the Prometheus endpoint of cmd/coords-mcp.
type MetricsConfig struct {
	Port int `koanf:"port"` // 0 disables /metrics
}

// Config is the merged runtime configuration returned by Load.
type Config struct {
	Arctan  string        `koanf:"arctan"` // atan|atan2
	Log     LogConfig     `koanf:"log"`
	Plot    PlotConfig    `koanf:"plot"`
	Metrics MetricsConfig `koanf:"metrics"`

	// ArctanMode is Arctan parsed by Load.
	ArctanMode coords.Arctan `koanf:"-"`
}

// Load merges the YAML file at path (if non-empty and present) with env vars.
// A missing file is not an error.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load env config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	applyDefaults(&cfg)

	mode, err := coords.ParseArctan(cfg.Arctan)
	if err != nil {
		return Config{}, err
	}
	cfg.ArctanMode = mode
	return cfg, nil
}

// envKey turns COORDS_LOG__LEVEL into log.level.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

func applyDefaults(c *Config) {
	if c.Arctan == "" {
		c.Arctan = coords.ArctanSingle.String()
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Encoding == "" {
		c.Log.Encoding = DefaultLogEncoding
	}
	if c.Plot.Size <= 0 {
		c.Plot.Size = DefaultPlotSize
	}
	if c.Metrics.Port < 0 {
		c.Metrics.Port = 0
	}
}
