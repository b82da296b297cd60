// Package tracing provides OpenTelemetry tracing for tally runs.
//
// # Spans
//
// Each command opens spans around the work it does:
//
//	gamerec.parse      parsing one input (tally.source, tally.games)
//	gamerec.validate   checking games against the limits (tally.sum, ...)
//	calibration.sum    scanning a calibration document
//	history.record     storing a run in the history database
//
// # Export
//
// Spans are batched to an OTLP gRPC collector when tracing.enabled is set.
// The exporter connects lazily; a missing collector only loses spans.
//
//	tracing:
//	  enabled: true
//	  endpoint: localhost:4317
//	  insecure: true
//	  sampler: ratio
//	  sample_ratio: 0.1
//
// # Parent Context
//
// A wrapper process can place tally's spans under its own trace by setting
// TRACEPARENT (and optionally TRACESTATE) in the W3C format:
//
//	TRACEPARENT=00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01 tally sum games.txt
//
// # Usage
//
//	tracer, err := tracing.New(&cfg.Tracing, version)
//	if err != nil {
//	    return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	ctx, span := tracer.Start(ctx, "gamerec.parse")
//	defer span.End()
package tracing
