// Package telemetry wires OpenTelemetry tracing and metrics for phaseart.
//
// Rendering is traced with one span per document (render.document,
// render.phase, render.audit). HTTP traffic is counted by the metrics
// middleware in internal/http. Both export over OTLP (gRPC or HTTP) to a
// collector when observability is enabled; otherwise Tracer and Meter hand
// out no-op instruments from the global providers.
//
//	tel, err := telemetry.New(ctx, telemetry.FromSettings(cfg.Observability, version))
//	if err != nil {
//	    return err
//	}
//	defer tel.Shutdown(context.Background())
//
//	ctx, span := tel.Tracer("phaseart.render").Start(ctx, "render.document")
//	defer span.End()
//
// Tests use NewTestTelemetry, which records spans in memory and exposes a
// manual metric reader:
//
//	tt := telemetry.NewTestTelemetry()
//	// exercise code with tt.Telemetry
//	tt.AssertSpanExists(t, "render.document")
package telemetry
