// Package logconfig loads the registry's declarative configuration — which
// loggers exist, their thresholds, and which sinks they attach — from a
// TOML file, with environment-variable overrides.
//
// Grounded on the load/override/validate pipeline in
// _examples/lixenwraith-log/config.go: NewConfigFromFile's use of
// github.com/lixenwraith/config as the loader (RegisterStruct, Load, Get)
// and the struct-of-defaults-plus-validate shape, generalized from one flat
// Config to a LoggerConfig-per-name map the way the specification's
// registry requires — since RegisterStruct/Get only round-trip flat scalar
// fields, the override step registers and extracts each logger's threshold
// under its own key space rather than the whole map at once; see
// applyEnvOverrides. Also promotes github.com/BurntSushi/toml from the
// teacher's indirect dependency (pulled in transitively by
// lixenwraith/config) to a direct one: Save writes a starter file with it
// directly, rather than leaving the encode half of that library unused.
package logconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	lxconfig "github.com/lixenwraith/config"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/event"
)

// SinkConfig describes one sink attached to a logger.
type SinkConfig struct {
	Type      string `toml:"type"` // "console", "rotating", or "remote"
	Target    string `toml:"target,omitempty"`
	Directory string `toml:"directory,omitempty"`
	Name      string `toml:"name,omitempty"`
	Extension string `toml:"extension,omitempty"`
	MaxSizeMB int    `toml:"max_size_mb,omitempty"`
	URL       string `toml:"url,omitempty"`
}

// LoggerConfig describes one named logger's configuration.
type LoggerConfig struct {
	Threshold string       `toml:"threshold"`
	Sinks     []SinkConfig `toml:"sinks,omitempty"`
}

// Config is the top-level registry configuration: one entry per logger
// name, keyed the same way registry.Get is.
type Config struct {
	Loggers map[string]LoggerConfig `toml:"loggers"`
}

// Default returns a Config with just a root logger at Info threshold and a
// single console sink. The registry's own root, built without a config,
// has the same console sink but keeps the Debug threshold.
func Default() *Config {
	return &Config{
		Loggers: map[string]LoggerConfig{
			"root": {
				Threshold: event.Info.String(),
				Sinks:     []SinkConfig{{Type: "console", Target: "stdout"}},
			},
		},
	}
}

// Load reads path as TOML, falling back to Default when the file does not
// exist, then applies environment overrides through lixenwraith/config the
// way the teacher's NewConfigFromFile does.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("logconfig: decode %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("logconfig: stat %s: %w", path, err)
	}

	if err := applyEnvOverrides(path, cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// thresholdOverride is the flat, single-field struct lixenwraith/config
// registers and extracts a logger's threshold through. Loggers is a map
// rather than the teacher's flat Config struct, so there is no single
// prefix to register cfg under directly; instead each logger name gets its
// own "log.loggers.<name>." key space, one RegisterStruct/Get round trip
// per logger, mirroring the teacher's extractConfig field-by-field pull
// generalized to a dynamic set of fields.
type thresholdOverride struct {
	Threshold string `toml:"threshold"`
}

// applyEnvOverrides lets LOG_LOGGERS_<NAME>_THRESHOLD override the
// corresponding logger's threshold after the TOML decode above, the way the
// teacher's extractConfig pulls merged file+env values back out of the
// loader once Load has populated it.
func applyEnvOverrides(path string, cfg *Config) error {
	loader := lxconfig.New()

	for name, lc := range cfg.Loggers {
		prefix := fmt.Sprintf("log.loggers.%s.", name)
		if err := loader.RegisterStruct(prefix, thresholdOverride{Threshold: lc.Threshold}); err != nil {
			return fmt.Errorf("logconfig: register struct for logger %q: %w", name, err)
		}
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, lxconfig.ErrConfigNotFound) {
		return fmt.Errorf("logconfig: load %s: %w", path, err)
	}

	for name, lc := range cfg.Loggers {
		key := fmt.Sprintf("log.loggers.%s.threshold", name)
		val, found := loader.Get(key)
		if !found {
			continue
		}
		strVal, ok := val.(string)
		if !ok {
			return fmt.Errorf("logconfig: logger %q: expected string threshold override, got %T", name, val)
		}
		lc.Threshold = strVal
		cfg.Loggers[name] = lc
	}

	return nil
}

// Save writes cfg to path as TOML, creating parent directories as needed.
// Used to seed a starter configuration file for an operator to edit.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("logconfig: create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("logconfig: create %s: %w", path, err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("logconfig: encode %s: %w", path, err)
	}
	return nil
}

func (c *Config) validate() error {
	for name, lc := range c.Loggers {
		if _, err := event.ParseLevel(lc.Threshold); err != nil {
			return fmt.Errorf("logconfig: logger %q: %w", name, err)
		}
		for _, sc := range lc.Sinks {
			switch sc.Type {
			case "console", "rotating", "remote":
			default:
				return fmt.Errorf("logconfig: logger %q: unknown sink type %q", name, sc.Type)
			}
		}
	}
	return nil
}
