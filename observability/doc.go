// Package observability provides OpenTelemetry tracing for streamkit.
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "httpclient.do")
//	defer span.End()
//
// When no tracer provider is installed, StartSpan returns a no-op span, so
// instrumented code paths carry no configuration burden.
package observability
