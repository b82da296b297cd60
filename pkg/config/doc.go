// Package config provides configuration management for tally.
//
// Configuration is read from a YAML file, completed with defaults, and
// overridden from the environment. The fixed game limits are deliberately
// absent: only the harness around the parser is configurable.
//
// # Configuration Loading
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("tally.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("tally.yaml")
//
//  3. From defaults with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("")
//
// # Environment Variable Overrides
//
// Variables are declared with `env` struct tags and follow the naming
// convention TALLY_SECTION_FIELD, for example:
//
//   - TALLY_LOG_LEVEL overrides logging.level
//   - TALLY_HISTORY_PATH overrides history.path
//   - TALLY_WATCH_EXTENSIONS=".txt,.log" overrides watch.extensions
//   - TALLY_TRACING_ENABLED overrides tracing.enabled
//
// LoadDotEnv loads a .env file into the environment first, if present.
//
// # Example Configuration
//
//	logging:
//	  level: debug
//	  format: json
//	parser:
//	  max_input_size: 1048576
//	metrics:
//	  textfile_path: /var/lib/node_exporter/tally.prom
//	history:
//	  enabled: true
//	  path: data/history.db
//	  retention_days: 7
//	  prune_schedule: "0 * * * *"
//	watch:
//	  debounce: 250ms
//	tracing:
//	  enabled: true
//	  endpoint: otel-collector:4317
//	  insecure: true
//	  sampler: ratio
//	  sample_ratio: 0.25
//
// # Singleton Pattern
//
//	if err := config.Initialize("tally.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//	cfg := config.GetConfig()
//
// For testing, prefer passing explicit *Config values.
package config
