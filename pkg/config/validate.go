package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "logging.level").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

var (
	validLogLevels     = []string{"debug", "info", "warn", "error"}
	validLogFormats    = []string{"json", "text", "console"}
	validOutputFormats = []string{"text", "json", "yaml", "csv", "xlsx"}
	validDrivers       = []string{"sqlite", "sqlite3"}
	validSamplers      = []string{"always", "never", "ratio"}
)

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. All validation errors are collected and
// returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateLogging(&cfg.Logging)...)
	errs = append(errs, validateParser(&cfg.Parser)...)
	errs = append(errs, validateOutput(&cfg.Output)...)
	errs = append(errs, validateHistory(&cfg.History)...)
	errs = append(errs, validateWatch(&cfg.Watch)...)
	errs = append(errs, validateTracing(&cfg.Tracing)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateLogging(cfg *LoggingConfig) []FieldError {
	var errs []FieldError
	if !oneOf(strings.ToLower(cfg.Level), validLogLevels) {
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validLogLevels, ", "), cfg.Level),
		})
	}
	if !oneOf(strings.ToLower(cfg.Format), validLogFormats) {
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validLogFormats, ", "), cfg.Format),
		})
	}
	return errs
}

func validateParser(cfg *ParserConfig) []FieldError {
	if cfg.MaxInputSize <= 0 {
		return []FieldError{{
			Field:   "parser.max_input_size",
			Message: fmt.Sprintf("must be positive, got %d", cfg.MaxInputSize),
		}}
	}
	return nil
}

func validateOutput(cfg *OutputConfig) []FieldError {
	if !oneOf(cfg.Format, validOutputFormats) {
		return []FieldError{{
			Field:   "output.format",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validOutputFormats, ", "), cfg.Format),
		}}
	}
	return nil
}

func validateHistory(cfg *HistoryConfig) []FieldError {
	var errs []FieldError
	if !oneOf(cfg.Driver, validDrivers) {
		errs = append(errs, FieldError{
			Field:   "history.driver",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validDrivers, ", "), cfg.Driver),
		})
	}
	if cfg.Path == "" {
		errs = append(errs, FieldError{Field: "history.path", Message: "must not be empty"})
	}
	if cfg.BusyTimeout < 0 {
		errs = append(errs, FieldError{Field: "history.busy_timeout", Message: "must not be negative"})
	}
	if cfg.RetentionDays < 0 {
		errs = append(errs, FieldError{
			Field:   "history.retention_days",
			Message: fmt.Sprintf("must not be negative, got %d", cfg.RetentionDays),
		})
	}
	if cfg.PruneSchedule != "" {
		if _, err := cron.ParseStandard(cfg.PruneSchedule); err != nil {
			errs = append(errs, FieldError{
				Field:   "history.prune_schedule",
				Message: fmt.Sprintf("invalid cron expression %q: %v", cfg.PruneSchedule, err),
			})
		}
	}
	return errs
}

func validateWatch(cfg *WatchConfig) []FieldError {
	var errs []FieldError
	if cfg.Debounce < 0 {
		errs = append(errs, FieldError{Field: "watch.debounce", Message: "must not be negative"})
	}
	if cfg.RateLimit < 0 {
		errs = append(errs, FieldError{Field: "watch.rate_limit", Message: "must not be negative"})
	}
	if cfg.RateBurst < 0 {
		errs = append(errs, FieldError{Field: "watch.rate_burst", Message: "must not be negative"})
	}
	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("watch.extensions[%d]", i),
				Message: fmt.Sprintf("must start with '.', got %q", ext),
			})
		}
	}
	return errs
}

func validateTracing(cfg *TracingConfig) []FieldError {
	var errs []FieldError
	if !oneOf(cfg.Sampler, validSamplers) {
		errs = append(errs, FieldError{
			Field:   "tracing.sampler",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validSamplers, ", "), cfg.Sampler),
		})
	}
	if cfg.SampleRatio < 0 || cfg.SampleRatio > 1 {
		errs = append(errs, FieldError{
			Field:   "tracing.sample_ratio",
			Message: fmt.Sprintf("must be between 0.0 and 1.0, got %g", cfg.SampleRatio),
		})
	}
	if cfg.Timeout < 0 {
		errs = append(errs, FieldError{Field: "tracing.timeout", Message: "must not be negative"})
	}
	if cfg.Enabled && cfg.Endpoint == "" {
		errs = append(errs, FieldError{Field: "tracing.endpoint", Message: "required when tracing is enabled"})
	}
	return errs
}

func oneOf(s string, valid []string) bool {
	for _, v := range valid {
		if s == v {
			return true
		}
	}
	return false
}
