package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mercator-hq/tally/pkg/cli"
	"mercator-hq/tally/pkg/config"
	"mercator-hq/tally/pkg/history"
)

var (
	historyFormat  string
	historyLimit   int
	historyCommand string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and prune recorded runs",
	Long: `Inspect the runs recorded with --record or by tally watch.

The database location and retention come from the history section of the
configuration.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete runs older than the retention period",
	Args:  cobra.NoArgs,
	RunE:  runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyPruneCmd)

	historyListCmd.Flags().StringVarP(&historyFormat, "format", "f", "", "output format (text, json, yaml, csv, xlsx)")
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to show (0 for all)")
	historyListCmd.Flags().StringVar(&historyCommand, "command", "", "only show runs of this command")
}

func openHistory() (*history.SQLiteStore, error) {
	cfg := config.MustGetConfig().History
	return history.OpenSQLite(history.SQLiteConfig{
		Driver:      cfg.Driver,
		Path:        cfg.Path,
		BusyTimeout: cfg.BusyTimeout,
	})
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(historyFormat)
	if err != nil {
		return err
	}

	store, err := openHistory()
	if err != nil {
		return cli.NewCommandError("history list", err)
	}
	defer store.Close()

	runs, err := store.List(cmd.Context(), history.ListOptions{
		Command: historyCommand,
		Limit:   historyLimit,
	})
	if err != nil {
		return cli.NewCommandError("history list", err)
	}

	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), runsView{Runs: runs})
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	cfg := config.MustGetConfig().History

	store, err := openHistory()
	if err != nil {
		return cli.NewCommandError("history prune", err)
	}
	defer store.Close()

	start := time.Now()
	deleted, err := history.NewPrunerFromConfig(store, cfg).Prune(cmd.Context())
	if err != nil {
		return cli.NewCommandError("history prune", err)
	}

	logger.InfoContext(cmd.Context(), "history pruned",
		"deleted", deleted,
		"retention_days", cfg.RetentionDays,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d run(s) older than %d day(s)\n", deleted, cfg.RetentionDays)
	return err
}
