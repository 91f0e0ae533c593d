package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log/noop"
)

func TestNewCore_ConsoleOnly(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Output.OTEL = false

	core, err := newCore(cfg, nil)
	require.NoError(t, err)
	assert.NotNil(t, core)
}

func TestNewCore_OTELWithoutProviderFallsBackToConsole(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Output.OTEL = true

	core, err := newCore(cfg, nil)
	require.NoError(t, err)
	assert.NotNil(t, core)
}

func TestNewCore_OTELOnly(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Output.Console = false
	cfg.Output.OTEL = true

	core, err := newCore(cfg, noop.NewLoggerProvider())
	require.NoError(t, err)
	assert.NotNil(t, core)

	_, err = newCore(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one output")
}

func TestNewCore_WritesToConfiguredWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewDefaultConfig()
	cfg.Output.Writer = &buf
	cfg.Sampling.Enabled = false

	logger, err := NewLogger(cfg, nil)
	require.NoError(t, err)

	logger.Info(context.Background(), "document rendered")
	require.NoError(t, logger.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "document rendered", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "phaseart", entry["service"])
	assert.Contains(t, entry, "ts")
}
