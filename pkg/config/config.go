// Package config loads csvgrid's TOML configuration file.
//
// The file is optional. Every setting has a default, and command-line flags
// override whatever the file says:
//
//	[defaults]
//	columns = 3
//	fill = "rows"
//	formats = ["text"]
//	border = "rounded"
//
//	[server]
//	addr = ":8080"
//	redis_addr = ""
//	cache_ttl = "1h"
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/csvgrid/pkg/errors"
	"github.com/matzehuels/csvgrid/pkg/grid"
	"github.com/matzehuels/csvgrid/pkg/pipeline"
)

const (
	appName  = "csvgrid"
	fileName = "config.toml"
)

// Config is the parsed configuration file.
type Config struct {
	Defaults Defaults `toml:"defaults"`
	Server   Server   `toml:"server"`
}

// Defaults are the render settings used when no flag is given.
type Defaults struct {
	Columns int       `toml:"columns"`
	Fill    grid.Fill `toml:"fill"`
	Formats []string  `toml:"formats"`
	Border  string    `toml:"border"`
}

// Server configures `csvgrid serve`.
type Server struct {
	Addr      string   `toml:"addr"`
	RedisAddr string   `toml:"redis_addr"`
	CacheTTL  Duration `toml:"cache_ttl"`
}

// Duration is a time.Duration written as a Go duration string ("90s", "1h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid duration %q", string(text))
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Defaults: Defaults{
			Columns: 3,
			Fill:    grid.FillRows,
			Formats: []string{pipeline.DefaultFormat},
			Border:  "rounded",
		},
		Server: Server{
			Addr:     ":8080",
			CacheTTL: Duration{time.Hour},
		},
	}
}

// DefaultPath returns the config file location following the XDG standard
// (~/.config/csvgrid/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config file at path. An empty path means [DefaultPath].
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	} else if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if c.Defaults.Columns < 1 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"defaults.columns must be at least 1, got %d", c.Defaults.Columns)
	}
	if c.Defaults.Columns > grid.MaxColumns {
		return errors.New(errors.ErrCodeInvalidConfig,
			"defaults.columns must be at most %d, got %d", grid.MaxColumns, c.Defaults.Columns)
	}
	if err := pipeline.ValidateFormats(c.Defaults.Formats); err != nil {
		return err
	}
	if err := pipeline.ValidateBorder(c.Defaults.Border); err != nil {
		return err
	}
	if c.Server.Addr != "" {
		if err := errors.ValidateListenAddr(c.Server.Addr); err != nil {
			return err
		}
	}
	if c.Server.CacheTTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.cache_ttl must not be negative")
	}
	return nil
}

// ColumnsText returns the default column count as text, the form the
// validator takes it in.
func (d Defaults) ColumnsText() string {
	return strconv.Itoa(d.Columns)
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is left alone unless force is set.
func WriteDefault(path string, force bool) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeInvalidConfig, "config already exists: %s (use --force to overwrite)", path)
		}
	}

	data, err := Default().Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
