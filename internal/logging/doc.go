// Package logging provides structured logging with OpenTelemetry integration.
//
// The package wraps Zap with:
//   - a Trace level (-2, below Debug) for per-element render detail
//   - console output on stderr and optional OpenTelemetry output via otelzap
//   - trace and request correlation fields taken from the context
//   - level-aware sampling where errors are never sampled
//
// # Usage
//
//	cfg, err := logging.FromSettings(appCfg.Logging)
//	if err != nil {
//	    return err
//	}
//	logger, err := logging.NewLogger(cfg, tel.LoggerProvider())
//	if err != nil {
//	    return err
//	}
//	defer logger.Sync()
//
//	ctx = logging.WithRequestID(ctx, id)
//	logger.Info(ctx, "document rendered", zap.Int("bytes", n))
//
// which writes
//
//	{"level":"info","ts":"2025-11-24T10:15:30.000Z","msg":"document rendered",
//	 "service":"phaseart","trace_id":"4bf9...","request.id":"9b2c...","bytes":18342}
//
// # Sampling
//
// Defaults per second:
//   - Trace: first 1, drop rest
//   - Debug: first 10, drop rest
//   - Info: first 100, then 1 every 10
//   - Warn: first 100, then 1 every 100
//   - Error and above: never sampled
//
// # Testing
//
//	tl := logging.NewTestLogger()
//	tl.Info(ctx, "served", zap.String("route", "/svg"))
//	tl.AssertLogged(t, zapcore.InfoLevel, "served")
//	tl.AssertField(t, "served", "route", "/svg")
//
// Logger is safe for concurrent use.
package logging
