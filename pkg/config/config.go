// Package config loads the aksara-diagram configuration file.
//
// The file lives at <user config dir>/aksara-diagram/config.toml by
// default and every section is optional: a missing file or key falls
// back to the built-in defaults, so the tools run without any setup.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the full configuration tree.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
}

// EngineConfig overrides layout defaults for parsed diagrams. Zero
// values leave the diagram's own settings untouched.
type EngineConfig struct {
	Algorithm string  `toml:"algorithm"`
	Direction string  `toml:"direction"`
	SpacingX  float64 `toml:"spacing_x"`
	SpacingY  float64 `toml:"spacing_y"`
}

// RenderConfig overrides render defaults.
type RenderConfig struct {
	Padding    float64 `toml:"padding"`
	Background string  `toml:"background"`
}

// CacheConfig selects and parameterizes the pipeline cache backend.
type CacheConfig struct {
	// Backend is "file", "redis" or "none".
	Backend string `toml:"backend"`

	// Dir is the file backend root. Empty means the
	// "aksara-diagram" folder under the user cache directory.
	Dir string `toml:"dir"`

	// TTL bounds the lifetime of cached artifacts ("24h", "30m").
	TTL Duration `toml:"ttl"`

	Redis RedisConfig `toml:"redis"`
}

// RedisConfig holds the connection settings of the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// StoreConfig selects and parameterizes the diagram store backend.
type StoreConfig struct {
	// Backend is "file" or "mongo".
	Backend string `toml:"backend"`

	// Dir is the file backend root. Empty means the
	// "aksara-diagram/diagrams" folder under the user config directory.
	Dir string `toml:"dir"`

	Mongo MongoConfig `toml:"mongo"`
}

// MongoConfig holds the connection settings of the mongo backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Duration wraps time.Duration so TOML files can write "24h" or "90s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Backend: "file",
			TTL:     Duration{24 * time.Hour},
		},
		Store: StoreConfig{
			Backend: "file",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "aksara-diagram", "config.toml"), nil
}

// Load reads the config file at path, or the default location when
// path is empty. A missing file yields [Default] without error.
func Load(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, err
		}
	}

	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: parse TOML: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate(path string) error {
	switch c.Cache.Backend {
	case "", "file", "redis", "none":
	default:
		return fmt.Errorf("%s: unknown cache backend %q", path, c.Cache.Backend)
	}
	switch c.Store.Backend {
	case "", "file", "mongo":
	default:
		return fmt.Errorf("%s: unknown store backend %q", path, c.Store.Backend)
	}
	return nil
}

// starter is the commented file written by Init.
const starter = `# aksara-diagram configuration

[engine]
# algorithm = "tree"        # tree | grid | tree-list
# direction = "top-to-bottom"
# spacing_x = 150.0
# spacing_y = 100.0

[render]
# padding = 50.0
# background = "#ffffff"

[cache]
backend = "file"            # file | redis | none
ttl = "24h"
# dir = ""                  # defaults to the user cache directory
# [cache.redis]
# addr = "localhost:6379"

[store]
backend = "file"            # file | mongo
# dir = ""                  # defaults to the user config directory
# [store.mongo]
# uri = "mongodb://localhost:27017"

[server]
addr = ":8080"
`

// Init writes a commented starter file to path, or the default
// location when path is empty. Existing files are left alone.
func Init(path string) (string, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return "", err
		}
	}
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%s: already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(starter), 0644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
