// Package observability provides OpenTelemetry tracing and metrics for iva.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("iva"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanFetch)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("iva"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewFetchMetrics(observability.Meter("iva"))
//	metrics.RecordFetch(ctx, "text", observability.OutcomeOK, n, duration)
//
// Setup wires both from a Config and returns a single shutdown function.
// When nothing is initialised the global no-op providers are used, so
// instrumented code runs unchanged.
package observability
