// Package config holds defaults and the optional TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; must be provided via flag, environment or file.
	DefaultDatabaseURL = ""

	// DefaultMaxConns caps the PostgreSQL pool size.
	DefaultMaxConns = 10

	// DefaultRateLimit is the default mutating requests per minute per IP address.
	DefaultRateLimit = 30

	// DefaultMaxDepth bounds ancestor walks and line views.
	DefaultMaxDepth = 12

	// DefaultLogLevel is used when neither flag nor environment sets one.
	DefaultLogLevel = "info"
)

// Config mirrors the TOML file. Every field is optional; command-line flags
// and environment variables take precedence.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Kinship  KinshipConfig  `toml:"kinship"`
}

// ServerConfig is the [server] section.
type ServerConfig struct {
	Port      string `toml:"port"`
	RateLimit int    `toml:"rate_limit"`
	LogLevel  string `toml:"log_level"`
}

// DatabaseConfig is the [database] section.
type DatabaseConfig struct {
	URL      string `toml:"url"`
	MaxConns int32  `toml:"max_conns"`
}

// KinshipConfig is the [kinship] section.
type KinshipConfig struct {
	MaxDepth int `toml:"max_depth"`
	// AncestorCache memoises ancestor maps in this process. Writes made by
	// other processes do not invalidate it, so leave it off when several
	// instances share a database.
	AncestorCache bool `toml:"ancestor_cache"`
}

// Default returns a Config populated with the package defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:      DefaultPort,
			RateLimit: DefaultRateLimit,
			LogLevel:  DefaultLogLevel,
		},
		Database: DatabaseConfig{
			URL:      DefaultDatabaseURL,
			MaxConns: DefaultMaxConns,
		},
		Kinship: KinshipConfig{MaxDepth: DefaultMaxDepth},
	}
}

// Load reads path over the defaults. An empty path returns the defaults;
// a missing file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config file %q not found: %w", path, err)
		}
		return cfg, fmt.Errorf("load config file %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config file %q: unknown keys %v", path, undecoded)
	}
	return cfg, cfg.Validate()
}

// Validate rejects values that cannot work.
func (c Config) Validate() error {
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must not be negative, got %d", c.Server.RateLimit)
	}
	if c.Database.MaxConns < 0 {
		return fmt.Errorf("database.max_conns must not be negative, got %d", c.Database.MaxConns)
	}
	if c.Kinship.MaxDepth < 1 {
		return fmt.Errorf("kinship.max_depth must be at least 1, got %d", c.Kinship.MaxDepth)
	}
	return nil
}

// Exists reports whether path names a readable file.
func Exists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
