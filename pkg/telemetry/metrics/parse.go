package metrics

import (
	"time"

	"mercator-hq/tally/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// ParseMetrics tracks record parsing.
//
// Metrics:
//   - tally_games_parse_total: Parse attempts by status
//   - tally_games_parse_failures_total: Failed parses by error type
//   - tally_games_parse_duration_seconds: Parse duration by status
//   - tally_games_parsed_total: Game records parsed successfully
type ParseMetrics struct {
	parseTotal *prometheus.CounterVec

	failuresTotal *prometheus.CounterVec

	duration *prometheus.HistogramVec

	gamesParsed prometheus.Counter
}

// NewParseMetrics creates and registers parse metrics with the provided registry.
func NewParseMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ParseMetrics {
	pm := &ParseMetrics{
		parseTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parse_total",
				Help:      "Total number of parse attempts",
			},
			[]string{"status"},
		),

		failuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parse_failures_total",
				Help:      "Total number of failed parses by error type",
			},
			[]string{"error_type"},
		),

		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parse_duration_seconds",
				Help:      "Duration of parsing one input in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
			},
			[]string{"status"},
		),

		gamesParsed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parsed_total",
				Help:      "Total number of game records parsed",
			},
		),
	}

	registry.MustRegister(
		pm.parseTotal,
		pm.failuresTotal,
		pm.duration,
		pm.gamesParsed,
	)

	return pm
}

// RecordSuccess records a successful parse that produced games records.
func (pm *ParseMetrics) RecordSuccess(games int, duration time.Duration) {
	pm.parseTotal.WithLabelValues("success").Inc()
	pm.duration.WithLabelValues("success").Observe(duration.Seconds())
	pm.gamesParsed.Add(float64(games))
}

// RecordFailure records a failed parse.
func (pm *ParseMetrics) RecordFailure(errorType string, duration time.Duration) {
	pm.parseTotal.WithLabelValues("error").Inc()
	pm.failuresTotal.WithLabelValues(errorType).Inc()
	pm.duration.WithLabelValues("error").Observe(duration.Seconds())
}
