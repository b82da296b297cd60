package tracing

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel/propagation"
)

// Environment variables that carry a parent trace context into a run, so
// that a CI job or wrapper script can put tally spans under its own trace.
const (
	EnvTraceParent = "TRACEPARENT"
	EnvTraceState  = "TRACESTATE"
)

var envPropagator = propagation.TraceContext{}

// ExtractFromEnv returns ctx carrying the remote span context named by
// TRACEPARENT. ok is false when TRACEPARENT is unset or malformed, in which
// case ctx is returned unchanged.
func ExtractFromEnv(ctx context.Context) (_ context.Context, ok bool) {
	traceparent := os.Getenv(EnvTraceParent)
	if !ValidateTraceParent(traceparent) {
		return ctx, false
	}

	carrier := propagation.MapCarrier{"traceparent": traceparent}
	if state := os.Getenv(EnvTraceState); state != "" {
		carrier["tracestate"] = state
	}
	return envPropagator.Extract(ctx, carrier), true
}

// InjectToMap writes the span context in ctx to carrier using W3C
// traceparent and tracestate keys.
func InjectToMap(ctx context.Context, carrier map[string]string) {
	envPropagator.Inject(ctx, propagation.MapCarrier(carrier))
}

// ValidateTraceParent reports whether traceparent is a well-formed W3C
// header value: version-trace_id-parent_id-trace_flags, for example
// 00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01. All-zero trace
// and parent IDs are invalid.
func ValidateTraceParent(traceparent string) bool {
	parts := strings.Split(traceparent, "-")
	if len(parts) != 4 {
		return false
	}

	for i, size := range []int{2, 32, 16, 2} {
		if len(parts[i]) != size || !isHexString(parts[i]) {
			return false
		}
	}

	return parts[1] != strings.Repeat("0", 32) && parts[2] != strings.Repeat("0", 16)
}

func isHexString(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
