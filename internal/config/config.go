// Package config provides configuration loading and validation for the hireflow CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Defaults applied by MergeWithDefaults.
const (
	DefaultPort          = 8080
	DefaultBackend       = BackendMemory
	DefaultSQLitePath    = "hireflow.db"
	DefaultSweepSchedule = "@daily"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

// Config represents the service configuration. It can be loaded from a JSON file and
// overlaid with environment variables; missing values use defaults.
type Config struct {
	// Server
	Port         int  `json:"port,omitempty"`
	AuthDisabled bool `json:"auth_disabled,omitempty"` // Skip token checks (local runs only)

	// Storage
	Backend     string `json:"backend,omitempty"`      // memory, postgres or sqlite
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	SQLitePath  string `json:"sqlite_path,omitempty"`  // SQLite database file
	Seed        bool   `json:"seed,omitempty"`         // Load the sample fixture on start

	// Background work
	SweepSchedule string `json:"sweep_schedule,omitempty"` // Cron spec for closing expired jobs

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn or error
	LogFormat string `json:"log_format,omitempty"` // text or json
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads the configuration from environment variables. Unset variables stay zero.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Backend:       strings.ToLower(os.Getenv("STORE_BACKEND")),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    os.Getenv("SQLITE_PATH"),
		SweepSchedule: os.Getenv("JOB_SWEEP_SCHEDULE"),
		LogLevel:      strings.ToLower(os.Getenv("LOG_LEVEL")),
		LogFormat:     strings.ToLower(os.Getenv("LOG_FORMAT")),
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	for name, dst := range map[string]*bool{
		"AUTH_DISABLED": &cfg.AuthDisabled,
		"SEED_ON_START": &cfg.Seed,
	} {
		raw := os.Getenv(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %v", name, err)
		}
		*dst = v
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
// Zero values are accepted since MergeWithDefaults fills them.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}

	switch c.Backend {
	case "", BackendMemory, BackendSQLite:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for the postgres backend")
		}
	default:
		return fmt.Errorf("config error: unknown backend %q (want memory, postgres or sqlite)", c.Backend)
	}

	if c.SweepSchedule != "" {
		if _, err := cron.ParseStandard(c.SweepSchedule); err != nil {
			return fmt.Errorf("config error: invalid 'sweep_schedule': %w", err)
		}
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown log level %q", c.LogLevel)
	}

	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("config error: unknown log format %q", c.LogFormat)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults and then
// from the package defaults. This is used to layer env over file over built-ins.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	result.Backend = firstNonEmpty(result.Backend, defaults.Backend, DefaultBackend)
	result.DatabaseURL = firstNonEmpty(result.DatabaseURL, defaults.DatabaseURL)
	result.SQLitePath = firstNonEmpty(result.SQLitePath, defaults.SQLitePath, DefaultSQLitePath)
	result.SweepSchedule = firstNonEmpty(result.SweepSchedule, defaults.SweepSchedule, DefaultSweepSchedule)
	result.LogLevel = firstNonEmpty(result.LogLevel, defaults.LogLevel, DefaultLogLevel)
	result.LogFormat = firstNonEmpty(result.LogFormat, defaults.LogFormat, DefaultLogFormat)

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}

	// Bool fields: either layer can switch them on
	result.AuthDisabled = result.AuthDisabled || defaults.AuthDisabled
	result.Seed = result.Seed || defaults.Seed

	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
