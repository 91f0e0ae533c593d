package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewResource(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.ServiceVersion = "1.0.0"

	res := newResource(cfg)
	require.NotNil(t, res)

	got := map[string]string{}
	for _, attr := range res.Attributes() {
		got[string(attr.Key)] = attr.Value.AsString()
	}
	assert.Equal(t, "phaseart", got["service.name"])
	assert.Equal(t, "1.0.0", got["service.version"])
}

func TestNewSampler(t *testing.T) {
	assert.Contains(t, newSampler(1).Description(), "AlwaysOnSampler")
	assert.Contains(t, newSampler(0).Description(), "AlwaysOffSampler")
	assert.Contains(t, newSampler(0.5).Description(), "TraceIDRatioBased")
	assert.Contains(t, newSampler(0.5).Description(), "ParentBased")
}

func TestStripScheme(t *testing.T) {
	assert.Equal(t, "collector:4318", stripScheme("https://collector:4318"))
	assert.Equal(t, "collector:4318", stripScheme("http://collector:4318"))
	assert.Equal(t, "collector:4318", stripScheme("collector:4318"))
}

func TestNewTracerProvider_CustomExporter(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	cfg := NewDefaultConfig()
	cfg.Enabled = true

	tp, err := newTracerProvider(context.Background(), cfg, newResource(cfg), &options{spanExporter: exp})
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "render.document")
	span.End()
	require.NoError(t, tp.ForceFlush(context.Background()))

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "render.document", spans[0].Name)
}

func TestNewMeterProvider_DisabledReturnsNil(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Metrics.Enabled = false

	mp, err := newMeterProvider(context.Background(), cfg, newResource(cfg), &options{})
	require.NoError(t, err)
	assert.Nil(t, mp)
}

func TestOptions(t *testing.T) {
	o := &options{}
	exp := tracetest.NewInMemoryExporter()

	WithTraceExporter(exp)(o)
	assert.Equal(t, sdktrace.SpanExporter(exp), o.spanExporter)

	WithMetricExporter(nil)(o)
	assert.Nil(t, o.metricExporter)

	logs := &recordingLogExporter{}
	WithLogExporter(logs)(o)
	assert.Same(t, logs, o.logExporter)
}

func TestNewLoggerProvider_DisabledReturnsNil(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Logs.Enabled = false

	lp, err := newLoggerProvider(context.Background(), cfg, newResource(cfg), &options{})
	require.NoError(t, err)
	assert.Nil(t, lp)
}
