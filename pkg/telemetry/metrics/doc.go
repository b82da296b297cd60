// Package metrics provides Prometheus metrics for tally runs.
//
// # Metrics Categories
//
//   - Parse metrics: attempts, failures by error type, duration, games parsed
//   - Aggregate metrics: games checked by outcome, violations by color, last sum
//   - Calibration metrics: runs and lines scanned by mode
//
// Metric names are prefixed with the configured namespace and subsystem,
// "tally_games_" by default.
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//
//	start := time.Now()
//	games, err := parser.NewParser().Parse(path)
//	collector.RecordParse(time.Since(start), len(games), err)
//
//	collector.RecordReport(validator.NewValidator().Report(games))
//
// # Exposition
//
// A CLI run is short-lived, so the usual way out is a textfile for the
// node_exporter textfile collector:
//
//	collector.WriteTextfile("/var/lib/node_exporter/tally.prom")
//
// Long-running watches can also serve the registry over HTTP with Handler.
package metrics
