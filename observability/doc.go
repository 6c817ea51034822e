// Package observability provides OpenTelemetry tracing and metrics for the
// RPC pipeline.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
// Every pipeline invocation then produces an rpc.invoke span with child spans
// per step (decode, authorize, handle, encode). Without an initialized
// provider the otel no-op implementations apply, so instrumentation is free
// to leave in place.
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("my-service"))
package observability
