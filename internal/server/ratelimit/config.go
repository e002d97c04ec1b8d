package ratelimit

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig sets the budget of one route. Paths ending in "/" match by prefix.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int // requests per Window
	Window time.Duration
	Burst  int // defaults to Limit when 0
}

const (
	defaultLimit           = 1000
	defaultWindow          = time.Minute
	defaultCleanupInterval = 5 * time.Minute
)

// LoadConfig reads the RATE_LIMIT_* environment. Unset variables take their defaults;
// malformed ones are an error rather than silently ignored.
func LoadConfig() (*Config, error) {
	env := envReader{}

	cfg := &Config{
		Enabled:         env.boolean("RATE_LIMIT_ENABLED", true),
		DefaultLimit:    env.integer("RATE_LIMIT_DEFAULT_LIMIT", defaultLimit),
		DefaultWindow:   env.duration("RATE_LIMIT_DEFAULT_WINDOW", defaultWindow),
		CleanupInterval: env.duration("RATE_LIMIT_CLEANUP_INTERVAL", defaultCleanupInterval),
		Whitelist:       env.ips("RATE_LIMIT_WHITELIST"),
		Blacklist:       env.ips("RATE_LIMIT_BLACKLIST"),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
	if env.err != nil {
		return nil, env.err
	}
	if cfg.Enabled && (cfg.DefaultLimit <= 0 || cfg.DefaultWindow <= 0) {
		return nil, fmt.Errorf("RATE_LIMIT_DEFAULT_LIMIT and RATE_LIMIT_DEFAULT_WINDOW must be positive")
	}
	return cfg, nil
}

// DefaultEndpointConfigs lists the routes with tighter budgets than the default.
// Reads fall through to the default limit and /health is never limited.
func DefaultEndpointConfigs() []EndpointConfig {
	perMinute := func(path, method string, limit, burst int) EndpointConfig {
		return EndpointConfig{Path: path, Method: method, Limit: limit, Window: time.Minute, Burst: burst}
	}
	return []EndpointConfig{
		// credentials and the workbook export
		perMinute("/auth/login", "POST", 10, 5),
		perMinute("/auth/register", "POST", 5, 2),
		perMinute("/analytics/export.xlsx", "GET", 10, 2),

		// writes
		perMinute("/jobs", "POST", 100, 10),
		perMinute("/jobs/", "POST", 300, 30), // view counters
		perMinute("/jobs/", "PUT", 100, 10),
		perMinute("/jobs/", "DELETE", 100, 10),
		perMinute("/applications", "POST", 100, 10),
		perMinute("/applications/", "POST", 100, 10),
		perMinute("/applications/", "PUT", 100, 10),
		perMinute("/interviews", "POST", 100, 10),
		perMinute("/interviews/", "POST", 100, 10),
		perMinute("/interviews/", "PUT", 100, 10),
		perMinute("/interviews/", "DELETE", 100, 10),
		perMinute("/conversations", "POST", 100, 10),
		perMinute("/conversations/", "POST", 300, 30), // chat traffic
		perMinute("/profiles", "POST", 100, 10),
		perMinute("/profiles/", "PUT", 100, 10),
	}
}

// envReader keeps the first parse error so LoadConfig can read every variable in one pass.
type envReader struct {
	err error
}

func (r *envReader) lookup(key string) (string, bool) {
	value := strings.TrimSpace(os.Getenv(key))
	return value, value != "" && r.err == nil
}

func (r *envReader) fail(key, value string, err error) {
	r.err = fmt.Errorf("invalid %s %q: %w", key, value, err)
}

func (r *envReader) boolean(key string, def bool) bool {
	value, ok := r.lookup(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		r.fail(key, value, err)
		return def
	}
	return b
}

func (r *envReader) integer(key string, def int) int {
	value, ok := r.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		r.fail(key, value, err)
		return def
	}
	return n
}

func (r *envReader) duration(key string, def time.Duration) time.Duration {
	value, ok := r.lookup(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		r.fail(key, value, err)
		return def
	}
	return d
}

// ips parses a comma-separated address list into a set keyed by the canonical form.
func (r *envReader) ips(key string) map[string]bool {
	set := make(map[string]bool)
	value, ok := r.lookup(key)
	if !ok {
		return set
	}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ip := net.ParseIP(part)
		if ip == nil {
			r.fail(key, part, fmt.Errorf("not an IP address"))
			return set
		}
		set[ip.String()] = true
	}
	return set
}
