// Package telemetry groups tally's observability packages.
//
//   - logging: structured logging with run, command and source fields
//   - metrics: Prometheus counters for parsing, aggregation and calibration
//   - tracing: OpenTelemetry spans exported over OTLP
//   - health: liveness and readiness probes for tally watch
//
// Commands build a logger, a metrics collector and a tracer from the
// loaded configuration before they run:
//
//	logger, _ := logging.New(logging.Config{Level: cfg.Logging.Level})
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//	tracer, _ := tracing.New(&cfg.Tracing, version)
//	defer tracer.Shutdown(context.Background())
package telemetry
