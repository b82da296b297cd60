package config

import "time"

// Config is the root configuration structure for tally.
// It covers logging, parser limits, output, metrics, tracing, run history
// and watch mode. The game limits themselves are fixed and not configurable.
type Config struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Parser contains input limits applied before parsing.
	Parser ParserConfig `yaml:"parser"`

	// Output contains the default output format for CLI results.
	Output OutputConfig `yaml:"output"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// History contains configuration for the run history store,
	// including retention and the prune schedule.
	History HistoryConfig `yaml:"history"`

	// Watch contains configuration for watch mode.
	Watch WatchConfig `yaml:"watch"`

	// Tracing contains OpenTelemetry tracing configuration.
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig contains configuration for structured logging.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level" env:"TALLY_LOG_LEVEL"`

	// Format is the log output format: "json", "text", "console".
	// Default: "text"
	Format string `yaml:"format" env:"TALLY_LOG_FORMAT"`

	// AddSource includes file:line in log records.
	// Default: false
	AddSource bool `yaml:"add_source" env:"TALLY_LOG_ADD_SOURCE"`
}

// ParserConfig contains configuration for the record parser.
type ParserConfig struct {
	// MaxInputSize is the largest input accepted, in bytes.
	// Default: 10485760 (10MB)
	MaxInputSize int64 `yaml:"max_input_size" env:"TALLY_PARSER_MAX_INPUT_SIZE"`
}

// OutputConfig contains configuration for CLI output.
type OutputConfig struct {
	// Format is the default result format: "text", "json", "yaml", "csv", "xlsx".
	// Default: "text"
	Format string `yaml:"format" env:"TALLY_OUTPUT_FORMAT"`
}

// MetricsConfig contains configuration for Prometheus metrics.
type MetricsConfig struct {
	// Enabled turns metric collection on.
	// Default: true
	Enabled bool `yaml:"enabled" env:"TALLY_METRICS_ENABLED"`

	// Namespace is the metric name prefix.
	// Default: "tally"
	Namespace string `yaml:"namespace" env:"TALLY_METRICS_NAMESPACE"`

	// Subsystem is the second metric name component.
	// Default: "games"
	Subsystem string `yaml:"subsystem" env:"TALLY_METRICS_SUBSYSTEM"`

	// TextfilePath, when set, is where metrics are written in the Prometheus
	// text format after each run (for the node_exporter textfile collector).
	TextfilePath string `yaml:"textfile_path" env:"TALLY_METRICS_TEXTFILE_PATH"`
}

// HistoryConfig contains configuration for the run history store.
type HistoryConfig struct {
	// Enabled records every sum run in the history store.
	// Default: false
	Enabled bool `yaml:"enabled" env:"TALLY_HISTORY_ENABLED"`

	// Driver is the database/sql driver: "sqlite" (pure Go) or "sqlite3" (cgo).
	// Default: "sqlite"
	Driver string `yaml:"driver" env:"TALLY_HISTORY_DRIVER"`

	// Path is the SQLite database file.
	// Default: "data/history.db"
	Path string `yaml:"path" env:"TALLY_HISTORY_PATH"`

	// BusyTimeout is how long to wait for database locks.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout" env:"TALLY_HISTORY_BUSY_TIMEOUT"`

	// RetentionDays is how many days of runs are kept by pruning.
	// Default: 30
	RetentionDays int `yaml:"retention_days" env:"TALLY_HISTORY_RETENTION_DAYS"`

	// PruneSchedule is a standard cron expression for pruning in watch mode.
	// Empty disables scheduled pruning.
	// Default: "0 3 * * *"
	PruneSchedule string `yaml:"prune_schedule" env:"TALLY_HISTORY_PRUNE_SCHEDULE"`
}

// WatchConfig contains configuration for watch mode.
type WatchConfig struct {
	// Debounce is the quiet period after a file event before re-tallying.
	// Default: 100ms
	Debounce time.Duration `yaml:"debounce" env:"TALLY_WATCH_DEBOUNCE"`

	// Extensions limits which files trigger a re-tally when a directory is
	// watched. Empty means every file.
	// Default: [".txt"]
	Extensions []string `yaml:"extensions" env:"TALLY_WATCH_EXTENSIONS" envSeparator:","`

	// RateLimit is the number of requests per second each client may make
	// to the watch HTTP endpoints.
	// Default: 10
	RateLimit float64 `yaml:"rate_limit" env:"TALLY_WATCH_RATE_LIMIT"`

	// RateBurst is the number of requests a client may make at once.
	// Default: 20
	RateBurst int `yaml:"rate_burst" env:"TALLY_WATCH_RATE_BURST"`
}

// TracingConfig contains configuration for OpenTelemetry tracing.
type TracingConfig struct {
	// Enabled turns on span export.
	// Default: false
	Enabled bool `yaml:"enabled" env:"TALLY_TRACING_ENABLED"`

	// Endpoint is the OTLP gRPC collector address (host:port).
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint" env:"TALLY_TRACING_ENDPOINT"`

	// Insecure disables TLS towards the collector.
	// Default: false
	Insecure bool `yaml:"insecure" env:"TALLY_TRACING_INSECURE"`

	// Timeout bounds each export.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout" env:"TALLY_TRACING_TIMEOUT"`

	// Sampler is the sampling strategy: "always", "never", "ratio".
	// Default: "always"
	Sampler string `yaml:"sampler" env:"TALLY_TRACING_SAMPLER"`

	// SampleRatio is the fraction of traces kept by the "ratio" sampler.
	// A zero ratio reads as unset; use the "never" sampler instead.
	// Default: 1.0
	SampleRatio float64 `yaml:"sample_ratio" env:"TALLY_TRACING_SAMPLE_RATIO"`

	// ServiceName is reported as the service.name resource attribute.
	// Default: "tally"
	ServiceName string `yaml:"service_name" env:"TALLY_TRACING_SERVICE_NAME"`
}
