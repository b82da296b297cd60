package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mercator-hq/tally/pkg/cli"
	"mercator-hq/tally/pkg/config"
	"mercator-hq/tally/pkg/telemetry/logging"
	"mercator-hq/tally/pkg/telemetry/metrics"
	"mercator-hq/tally/pkg/telemetry/tracing"
)

var (
	// Global flags
	cfgFile     string
	verbose     bool
	metricsFile string
)

// Per-invocation state, set up by setup before any command runs.
var (
	logger    *logging.Logger
	collector *metrics.Collector
	tracer    *tracing.Tracer
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Tally - parse game records and sum the possible games",
	Long: `Tally parses line-oriented game records such as

  Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green

into structured games, checks every round against the fixed limits
(12 red, 13 green, 14 blue) and sums the IDs of the games that fit.

Malformed input is rejected as a whole, with the offending line and
column, a source excerpt and a suggestion where one is available.`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return flushMetrics()
	},
}

// Execute runs the root command.
func Execute() {
	ctx, stop := cli.SetupSignalHandler(context.Background())
	err := rootCmd.ExecuteContext(ctx)
	stop()
	shutdownTracer()
	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultConfigPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile after the run")
}

// setup loads .env and the configuration, then builds the logger and the
// metrics collector.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return cli.NewConfigError(".env", err.Error())
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	config.SetConfig(cfg)

	logCfg := logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
		Writer:    cmd.ErrOrStderr(),
	}
	if verbose {
		logCfg.Level = "debug"
	}
	logger, err = logging.New(logCfg)
	if err != nil {
		return cli.NewConfigError("logging", err.Error())
	}
	slog.SetDefault(logger.Slog())

	collector = metrics.NewCollector(&cfg.Metrics, nil)

	tracer, err = tracing.New(&cfg.Tracing, Version)
	if err != nil {
		return cli.NewConfigError("tracing", err.Error())
	}

	ctx := logging.WithRunID(cmd.Context(), logging.NewRunID())
	ctx = logging.WithCommand(ctx, cmd.Name())
	if parent, ok := tracing.ExtractFromEnv(ctx); ok {
		ctx = parent
		logger.DebugContext(ctx, "continuing parent trace", "trace_id", tracing.TraceID(ctx))
	}
	cmd.SetContext(ctx)

	logger.DebugContext(ctx, "configuration loaded", "config", cfgFile)
	return nil
}

// loadConfig reads the config file with environment overrides. A missing
// file at the default path means defaults; an explicitly named file must
// exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := cfgFile
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}

	cfg, err := config.LoadConfigWithEnvOverrides(path)
	if err != nil {
		return nil, cli.NewConfigError(cfgFile, err.Error())
	}
	return cfg, nil
}

// flushMetrics writes the textfile named by --metrics-file, or by the
// configuration when the flag is absent.
func flushMetrics() error {
	if collector == nil || !collector.Enabled() {
		return nil
	}

	path := metricsFile
	if path == "" {
		path = config.MustGetConfig().Metrics.TextfilePath
	}
	if path == "" {
		return nil
	}

	if err := collector.WriteTextfile(path); err != nil {
		return fmt.Errorf("failed to export metrics: %w", err)
	}
	logger.Debug("metrics written", "path", path)
	return nil
}

// shutdownTracer flushes spans still buffered by the exporter.
func shutdownTracer() {
	if tracer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tracer.Shutdown(ctx); err != nil {
		logger.Warn("failed to flush traces", "error", err)
	}
}
