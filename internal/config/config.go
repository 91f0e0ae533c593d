// Package config provides configuration loading for phaseart.
//
// Configuration is assembled from hardcoded defaults, an optional YAML file and
// PHASEART_* environment variables, in increasing order of precedence. See
// LoadWithFile for the file rules and the environment mapping.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Canvas limits.
const (
	MaxCanvasSize = 10000
)

// hexColorPattern matches a #rrggbb colour.
var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Config holds the complete phaseart configuration.
type Config struct {
	Server        ServerConfig        `koanf:"server"`
	Canvas        CanvasConfig        `koanf:"canvas"`
	Logging       LoggingConfig       `koanf:"logging"`
	Observability ObservabilityConfig `koanf:"observability"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"http_port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	RateLimit       float64       `koanf:"rate_limit"` // requests per second per client, 0 disables
	RateBurst       int           `koanf:"rate_burst"`
}

// CanvasConfig holds the artwork canvas parameters.
type CanvasConfig struct {
	Width      int    `koanf:"width"`
	Height     int    `koanf:"height"`
	Background string `koanf:"background"`
}

// LoggingConfig holds the user-facing subset of logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ObservabilityConfig holds OpenTelemetry configuration.
type ObservabilityConfig struct {
	Enabled        bool    `koanf:"enabled"`
	Endpoint       string  `koanf:"endpoint"`
	Protocol       string  `koanf:"protocol"`
	Insecure       bool    `koanf:"insecure"`
	ServiceName    string  `koanf:"service_name"`
	SamplingRate   float64 `koanf:"sampling_rate"`
	MetricsEnabled bool    `koanf:"metrics_enabled"`
	LogsDisabled   bool    `koanf:"logs_disabled"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Validate validates the configuration.
//
// Returns an error if:
//   - Server port is not between 1 and 65535
//   - Shutdown timeout is not positive
//   - Rate limit or burst is negative
//   - Canvas dimensions are outside 1..MaxCanvasSize
//   - Canvas background is not a #rrggbb colour
//   - Logging format is not json or console
//   - Service name is empty while telemetry is enabled
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d (must be 1-65535)", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("rate limit must be >= 0, got %v", c.Server.RateLimit)
	}
	if c.Server.RateBurst < 0 {
		return fmt.Errorf("rate burst must be >= 0, got %d", c.Server.RateBurst)
	}

	if err := ValidateCanvas(c.Canvas.Width, c.Canvas.Height, c.Canvas.Background); err != nil {
		return err
	}

	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("logging format must be 'json' or 'console', got %q", c.Logging.Format)
	}

	if c.Observability.Enabled && c.Observability.ServiceName == "" {
		return errors.New("service name required when telemetry is enabled")
	}

	return nil
}

// ValidateCanvas checks canvas dimensions and background colour.
func ValidateCanvas(width, height int, background string) error {
	if width < 1 || width > MaxCanvasSize {
		return fmt.Errorf("invalid canvas width: %d (must be 1-%d)", width, MaxCanvasSize)
	}
	if height < 1 || height > MaxCanvasSize {
		return fmt.Errorf("invalid canvas height: %d (must be 1-%d)", height, MaxCanvasSize)
	}
	if !IsHexColor(background) {
		return fmt.Errorf("invalid canvas background %q (must be #rrggbb)", background)
	}
	return nil
}

// IsHexColor reports whether s is a #rrggbb colour.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}
