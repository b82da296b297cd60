package metrics

import (
	"mercator-hq/tally/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// CalibrationMetrics tracks calibration scans.
//
// Metrics:
//   - tally_games_calibration_runs_total: Calibration runs by mode and status
//   - tally_games_calibration_lines_total: Lines scanned by mode
type CalibrationMetrics struct {
	runsTotal *prometheus.CounterVec

	linesTotal *prometheus.CounterVec
}

// NewCalibrationMetrics creates and registers calibration metrics with the
// provided registry.
func NewCalibrationMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *CalibrationMetrics {
	cm := &CalibrationMetrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "calibration_runs_total",
				Help:      "Total number of calibration runs",
			},
			[]string{"mode", "status"},
		),

		linesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "calibration_lines_total",
				Help:      "Total number of calibration lines scanned",
			},
			[]string{"mode"},
		),
	}

	registry.MustRegister(cm.runsTotal, cm.linesTotal)

	return cm
}

// Record records one calibration run.
func (cm *CalibrationMetrics) Record(mode, status string, lines int) {
	cm.runsTotal.WithLabelValues(mode, status).Inc()
	cm.linesTotal.WithLabelValues(mode).Add(float64(lines))
}
