package telemetry

import (
	"testing"
	"time"

	"github.com/fyrsmithlabs/phaseart/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "localhost:4317", cfg.Endpoint)
	assert.Equal(t, ProtocolGRPC, cfg.Protocol)
	assert.Equal(t, "phaseart", cfg.ServiceName)
	assert.True(t, cfg.Insecure)
	assert.Equal(t, 1.0, cfg.Sampling.Rate)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 15*time.Second, cfg.Metrics.ExportInterval.Duration())
	assert.Equal(t, 5*time.Second, cfg.Shutdown.Timeout.Duration())
}

func TestFromSettings(t *testing.T) {
	cfg := FromSettings(config.ObservabilityConfig{
		Enabled:        true,
		Endpoint:       "collector.internal:4318",
		Protocol:       ProtocolHTTP,
		ServiceName:    "phaseart-staging",
		SamplingRate:   0.25,
		MetricsEnabled: true,
	}, "1.2.3")

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "collector.internal:4318", cfg.Endpoint)
	assert.Equal(t, ProtocolHTTP, cfg.Protocol)
	assert.Equal(t, "phaseart-staging", cfg.ServiceName)
	assert.Equal(t, "1.2.3", cfg.ServiceVersion)
	assert.False(t, cfg.Insecure)
	assert.Equal(t, 0.25, cfg.Sampling.Rate)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Logs.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestFromSettings_LogsDisabled(t *testing.T) {
	cfg := FromSettings(config.ObservabilityConfig{Enabled: true, LogsDisabled: true}, "")
	assert.False(t, cfg.Logs.Enabled)
}

func TestFromSettings_KeepsDefaultsForBlanks(t *testing.T) {
	cfg := FromSettings(config.ObservabilityConfig{}, "")

	assert.Equal(t, "localhost:4317", cfg.Endpoint)
	assert.Equal(t, ProtocolGRPC, cfg.Protocol)
	assert.Equal(t, "phaseart", cfg.ServiceName)
	assert.Equal(t, "dev", cfg.ServiceVersion)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing endpoint", func(c *Config) { c.Endpoint = "" }, "endpoint is required"},
		{"missing service name", func(c *Config) { c.ServiceName = "" }, "service_name is required"},
		{"missing version", func(c *Config) { c.ServiceVersion = "" }, "service_version is required"},
		{"bad protocol", func(c *Config) { c.Protocol = "udp" }, "protocol must be"},
		{"insecure remote", func(c *Config) { c.Endpoint = "otel.example.com:4317" }, "insecure connections"},
		{"rate too low", func(c *Config) { c.Sampling.Rate = -0.1 }, "sampling.rate"},
		{"rate too high", func(c *Config) { c.Sampling.Rate = 1.5 }, "sampling.rate"},
		{"zero interval", func(c *Config) { c.Metrics.ExportInterval = 0 }, "export_interval"},
		{"zero shutdown", func(c *Config) { c.Shutdown.Timeout = 0 }, "shutdown.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			cfg.Enabled = true
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_DisabledSkipsChecks(t *testing.T) {
	cfg := &Config{Enabled: false}
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_RemoteWithTLS(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = "https://otel.example.com"
	cfg.Protocol = ProtocolHTTP
	cfg.Insecure = false

	assert.NoError(t, cfg.Validate())
}

func TestIsLocalEndpoint(t *testing.T) {
	local := []string{
		"localhost:4317",
		"localhost",
		"127.0.0.1:4317",
		"127.0.0.53:4317",
		"[::1]:4317",
		"::1",
		"http://localhost:4318",
	}
	for _, ep := range local {
		assert.True(t, isLocalEndpoint(ep), ep)
	}

	remote := []string{
		"otel.example.com:4317",
		"10.0.0.5:4317",
		"[2001:db8::1]:4317",
		"localhost.example.com:4317",
		"https://collector:4318",
	}
	for _, ep := range remote {
		assert.False(t, isLocalEndpoint(ep), ep)
	}
}
