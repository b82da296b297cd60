package config

import "time"

// Default values for configuration fields.
const (
	DefaultConfigPath = "tally.yaml"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	// Parser defaults
	DefaultParserMaxInputSize int64 = 10 * 1024 * 1024 // 10MB

	// Output defaults
	DefaultOutputFormat = "text"

	// Metrics defaults
	DefaultMetricsEnabled   = true
	DefaultMetricsNamespace = "tally"
	DefaultMetricsSubsystem = "games"

	// History defaults
	DefaultHistoryDriver        = "sqlite"
	DefaultHistoryPath          = "data/history.db"
	DefaultHistoryBusyTimeout   = 5 * time.Second
	DefaultHistoryRetentionDays = 30
	DefaultHistoryPruneSchedule = "0 3 * * *"

	// Watch defaults
	DefaultWatchDebounce  = 100 * time.Millisecond
	DefaultWatchRateLimit = 10.0
	DefaultWatchRateBurst = 20

	// Tracing defaults
	DefaultTracingEndpoint    = "localhost:4317"
	DefaultTracingTimeout     = 10 * time.Second
	DefaultTracingSampler     = "always"
	DefaultTracingSampleRatio = 1.0
	DefaultTracingServiceName = "tally"
)

// DefaultWatchExtensions are the file extensions watched by default.
var DefaultWatchExtensions = []string{".txt"}

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	cfg := &Config{
		Metrics: MetricsConfig{Enabled: DefaultMetricsEnabled},
	}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields with their defaults.
// Booleans are left alone since false is a meaningful setting.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyParserDefaults(&cfg.Parser)
	applyOutputDefaults(&cfg.Output)
	applyMetricsDefaults(&cfg.Metrics)
	applyHistoryDefaults(&cfg.History)
	applyWatchDefaults(&cfg.Watch)
	applyTracingDefaults(&cfg.Tracing)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = DefaultLogLevel
	}
	if cfg.Format == "" {
		cfg.Format = DefaultLogFormat
	}
}

func applyParserDefaults(cfg *ParserConfig) {
	if cfg.MaxInputSize == 0 {
		cfg.MaxInputSize = DefaultParserMaxInputSize
	}
}

func applyOutputDefaults(cfg *OutputConfig) {
	if cfg.Format == "" {
		cfg.Format = DefaultOutputFormat
	}
}

func applyMetricsDefaults(cfg *MetricsConfig) {
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = DefaultMetricsSubsystem
	}
}

func applyHistoryDefaults(cfg *HistoryConfig) {
	if cfg.Driver == "" {
		cfg.Driver = DefaultHistoryDriver
	}
	if cfg.Path == "" {
		cfg.Path = DefaultHistoryPath
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = DefaultHistoryBusyTimeout
	}
	if cfg.RetentionDays == 0 {
		cfg.RetentionDays = DefaultHistoryRetentionDays
	}
	if cfg.PruneSchedule == "" {
		cfg.PruneSchedule = DefaultHistoryPruneSchedule
	}
}

func applyWatchDefaults(cfg *WatchConfig) {
	if cfg.Debounce == 0 {
		cfg.Debounce = DefaultWatchDebounce
	}
	if cfg.Extensions == nil {
		cfg.Extensions = append([]string(nil), DefaultWatchExtensions...)
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = DefaultWatchRateLimit
	}
	if cfg.RateBurst == 0 {
		cfg.RateBurst = DefaultWatchRateBurst
	}
}

func applyTracingDefaults(cfg *TracingConfig) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultTracingEndpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTracingTimeout
	}
	if cfg.Sampler == "" {
		cfg.Sampler = DefaultTracingSampler
	}
	if cfg.SampleRatio == 0 {
		cfg.SampleRatio = DefaultTracingSampleRatio
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultTracingServiceName
	}
}
