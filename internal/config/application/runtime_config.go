package application

import (
	"os"
	"strconv"
	"strings"

	"reportboard/internal/reporting/domain"
)

// RuntimeConfig holds all runtime configuration from CLI flags, environment variables, and .env file
type RuntimeConfig struct {
	// API Configuration
	APIPort string

	// Development Mode
	DevMode bool

	// Logging Configuration
	LogLevel  string
	LogFormat string
	LogOutput string

	// Database Configuration
	DBPath string

	// Range used when a request does not select one
	DefaultRange string
}

// LoadRuntimeConfig loads configuration with precedence: CLI flags > env vars > .env file > defaults
func LoadRuntimeConfig(port, logLevel, logFormat, logOutput, dbPath, defaultRange string, devMode bool) *RuntimeConfig {
	cfg := &RuntimeConfig{
		APIPort:      getValue(port, "REPORTBOARD_PORT", "8080"),
		DevMode:      devMode || getBoolEnv("REPORTBOARD_DEV_MODE", false),
		LogLevel:     getValue(logLevel, "REPORTBOARD_LOG_LEVEL", "INFO"),
		LogFormat:    getValue(logFormat, "REPORTBOARD_LOG_FORMAT", "text"),
		LogOutput:    getValue(logOutput, "REPORTBOARD_LOG_OUTPUT", "stdout"),
		DBPath:       getValue(dbPath, "REPORTBOARD_DB_PATH", "reportboard.db"),
		DefaultRange: getValue(defaultRange, "REPORTBOARD_DEFAULT_RANGE", string(domain.DefaultTimeRange)),
	}

	return cfg
}

// getValue returns the first non-empty value from CLI flag, env var, or default
func getValue(cliValue, envKey, defaultValue string) string {
	if cliValue != "" {
		return cliValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getBoolEnv gets a boolean environment variable
func getBoolEnv(key string, defaultValue bool) bool {
	value := strings.ToLower(os.Getenv(key))
	if value == "true" || value == "1" || value == "yes" {
		return true
	}
	if value == "false" || value == "0" || value == "no" {
		return false
	}
	return defaultValue
}

// Validate checks that the configuration is usable
func (c *RuntimeConfig) Validate() error {
	if c.APIPort == "" {
		return &ConfigError{Field: "port", Message: "port is required (set REPORTBOARD_PORT or use --port flag)"}
	}
	if p, err := strconv.Atoi(c.APIPort); err != nil || p < 1 || p > 65535 {
		return &ConfigError{Field: "port", Message: "port must be a number between 1 and 65535, got " + strconv.Quote(c.APIPort)}
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return &ConfigError{Field: "log-format", Message: "log format must be text or json, got " + strconv.Quote(c.LogFormat)}
	}
	if _, err := domain.ParseTimeRange(c.DefaultRange); err != nil {
		return &ConfigError{Field: "default-range", Message: err.Error()}
	}
	return nil
}

// Range returns the configured default range, falling back to one month
// when the configured value does not parse.
func (c *RuntimeConfig) Range() domain.TimeRange {
	r, err := domain.ParseTimeRange(c.DefaultRange)
	if err != nil {
		return domain.DefaultTimeRange
	}
	return r
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
