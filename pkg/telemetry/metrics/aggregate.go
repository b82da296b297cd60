package metrics

import (
	"mercator-hq/tally/pkg/config"
	"mercator-hq/tally/pkg/gamerec/validator"

	"github.com/prometheus/client_golang/prometheus"
)

// AggregateMetrics tracks validation and aggregation results.
//
// Metrics:
//   - tally_games_checked_total: Games checked by outcome (possible, impossible)
//   - tally_games_violations_total: Limit violations by color
//   - tally_games_last_sum: Sum produced by the most recent run
//   - tally_games_last_run_timestamp_seconds: Unix time of the most recent run
type AggregateMetrics struct {
	checkedTotal *prometheus.CounterVec

	violationsTotal *prometheus.CounterVec

	lastSum prometheus.Gauge

	lastRun prometheus.Gauge
}

// NewAggregateMetrics creates and registers aggregation metrics with the
// provided registry.
func NewAggregateMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *AggregateMetrics {
	am := &AggregateMetrics{
		checkedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "checked_total",
				Help:      "Total number of games checked against the limits",
			},
			[]string{"outcome"},
		),

		violationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "violations_total",
				Help:      "Total number of round counts exceeding a limit",
			},
			[]string{"color"},
		),

		lastSum: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "last_sum",
				Help:      "Sum of possible game IDs from the most recent run",
			},
		),

		lastRun: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix timestamp of the most recent aggregation run",
			},
		),
	}

	registry.MustRegister(
		am.checkedTotal,
		am.violationsTotal,
		am.lastSum,
		am.lastRun,
	)

	return am
}

// Record records one report.
func (am *AggregateMetrics) Record(report *validator.Report) {
	am.checkedTotal.WithLabelValues("possible").Add(float64(report.Possible))
	am.checkedTotal.WithLabelValues("impossible").Add(float64(report.Total - report.Possible))

	for _, v := range report.Violations() {
		am.violationsTotal.WithLabelValues(string(v.Color)).Inc()
	}

	am.lastSum.Set(float64(report.Sum))
	am.lastRun.SetToCurrentTime()
}
