package metrics

import (
	"time"

	"mercator-hq/tally/pkg/config"
	recErrors "mercator-hq/tally/pkg/gamerec/errors"
	"mercator-hq/tally/pkg/gamerec/validator"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector owns every Prometheus metric tally exposes. All Record methods
// are no-ops when metrics are disabled in the configuration.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	parseMetrics       *ParseMetrics
	aggregateMetrics   *AggregateMetrics
	calibrationMetrics *CalibrationMetrics
}

// NewCollector creates a new metrics collector with the specified configuration
// and Prometheus registry. If registry is nil, a fresh registry is created.
//
// Example:
//
//	cfg := &config.MetricsConfig{
//		Enabled:   true,
//		Namespace: "tally",
//		Subsystem: "games",
//	}
//	collector := metrics.NewCollector(cfg, nil)
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}

	return &Collector{
		config:             cfg,
		registry:           registry,
		parseMetrics:       NewParseMetrics(cfg, registry),
		aggregateMetrics:   NewAggregateMetrics(cfg, registry),
		calibrationMetrics: NewCalibrationMetrics(cfg, registry),
	}
}

// RecordParse records one parse of an input. A nil err counts as success
// and adds games to the parsed-games counter; otherwise the failure is
// counted under the record error type ("other" for non-record errors).
//
// Example:
//
//	start := time.Now()
//	games, err := p.Parse(path)
//	collector.RecordParse(time.Since(start), len(games), err)
func (c *Collector) RecordParse(duration time.Duration, games int, err error) {
	if !c.config.Enabled {
		return
	}

	if err != nil {
		errType := string(recErrors.TypeOf(err))
		if errType == "" {
			errType = "other"
		}
		c.parseMetrics.RecordFailure(errType, duration)
		return
	}
	c.parseMetrics.RecordSuccess(games, duration)
}

// RecordReport records the outcome of one aggregation run.
func (c *Collector) RecordReport(report *validator.Report) {
	if !c.config.Enabled || report == nil {
		return
	}

	c.aggregateMetrics.Record(report)
}

// RecordCalibration records one calibration run for mode. A nil err counts
// as success.
func (c *Collector) RecordCalibration(mode string, lines int, err error) {
	if !c.config.Enabled {
		return
	}

	status := "success"
	if err != nil {
		status = "error"
	}
	c.calibrationMetrics.Record(mode, status, lines)
}

// Enabled reports whether the collector records anything.
func (c *Collector) Enabled() bool {
	return c.config.Enabled
}

// Registry returns the Prometheus registry used by this collector.
// This can be used to create an HTTP handler for the /metrics endpoint:
//
//	http.Handle("/metrics", promhttp.HandlerFor(
//		collector.Registry(),
//		promhttp.HandlerOpts{},
//	))
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
