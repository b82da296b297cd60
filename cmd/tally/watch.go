package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"mercator-hq/tally/pkg/cli"
	"mercator-hq/tally/pkg/config"
	"mercator-hq/tally/pkg/history"
	"mercator-hq/tally/pkg/telemetry/health"
	"mercator-hq/tally/pkg/telemetry/logging"
	"mercator-hq/tally/pkg/watch"
)

var watchHTTPAddr string

var watchCmd = &cobra.Command{
	Use:   "watch PATH",
	Short: "Re-tally game records whenever they change",
	Long: `Watch a file, or a directory of record files, and print a fresh sum
every time an input changes. Bursts of writes are coalesced using the
configured debounce interval.

When history is enabled in the configuration every tally is recorded and
old runs are pruned on the configured schedule.

With --http-addr the watch also serves /metrics, /health, /ready and
/version. Readiness fails while the watched path is missing or the history
store is unreachable.

Examples:
  # Watch a single file
  tally watch games.txt

  # Watch a directory and expose metrics and probes
  tally watch records/ --http-addr :9090`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchHTTPAddr, "http-addr", "", "serve metrics and health probes on this address while watching")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.MustGetConfig()
	path := args[0]

	store, err := history.Open(cfg.History)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer store.Close()

	if cfg.History.Enabled {
		scheduler := history.NewPrunerFromConfig(store, cfg.History).Scheduler()
		if err := scheduler.Start(ctx); err != nil {
			return cli.NewCommandError("watch", err)
		}
		defer scheduler.Stop()
	}

	if watchHTTPAddr != "" {
		srv := serveHTTP(ctx, watchHTTPAddr, newWatchChecker(store, path))
		defer shutdownHTTP(srv)
	}

	out := cmd.OutOrStdout()
	onChange := func(ctx context.Context, changed string) error {
		return tallyAndRecord(ctx, cmd.InOrStdin(), out, store, changed)
	}

	w, err := watch.New(watch.Config{
		Path:       path,
		Debounce:   cfg.Watch.Debounce,
		Extensions: cfg.Watch.Extensions,
		SkipHidden: true,
	}, logger.Slog())
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	// An initial tally of a single file; directories wait for changes.
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		if err := onChange(ctx, path); err != nil {
			logger.WarnContext(ctx, "initial tally failed", "error", err)
		}
	}

	if err := w.Watch(ctx, onChange); err != nil {
		return cli.NewCommandError("watch", err)
	}
	return nil
}

// tallyAndRecord sums one changed input, prints "path: sum" and records the
// run. A malformed input prints the error and keeps the watch going.
func tallyAndRecord(ctx context.Context, in io.Reader, out io.Writer, store history.Store, path string) error {
	ctx = logging.WithRunID(ctx, logging.NewRunID())
	report, err := tally(ctx, in, path)

	run := reportRun("watch", path, report, err)
	run.ID = logging.GetRunID(ctx)
	if recErr := store.Record(ctx, run); recErr != nil {
		logger.WarnContext(ctx, "failed to record run", "error", recErr)
	}

	if err != nil {
		fmt.Fprintf(out, "%s: error: %s\n", path, firstLine(err.Error()))
		return err
	}
	_, werr := fmt.Fprintf(out, "%s: %d\n", path, report.Sum)
	return werr
}

// newWatchChecker registers the readiness checks of a running watch.
func newWatchChecker(store history.Store, path string) *health.Checker {
	checker := health.New(2 * time.Second)
	checker.Register("input", func(ctx context.Context) error {
		_, err := os.Stat(path)
		return err
	})
	checker.Register("history", func(ctx context.Context) error {
		_, err := store.Count(ctx)
		return err
	})
	return checker
}

// newWatchRouter routes the probes, and /metrics when metrics are enabled.
// Every route is rate limited per client address.
func newWatchRouter(checker *health.Checker) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	watchCfg := config.MustGetConfig().Watch
	r.Use(health.NewRateLimiter(watchCfg.RateLimit, watchCfg.RateBurst).Middleware)
	if collector.Enabled() {
		r.Handle("/metrics", collector.Handler())
	}
	health.Register(r, checker, health.NewVersionInfo(Version, GitCommit, BuildDate))
	return r
}

// serveHTTP serves the watch endpoints on addr in the background.
func serveHTTP(ctx context.Context, addr string, checker *health.Checker) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newWatchRouter(checker),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.InfoContext(ctx, "serving metrics and probes", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "http server failed", "error", err)
		}
	}()
	return srv
}

func shutdownHTTP(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("http server shutdown failed", "error", err)
	}
}
