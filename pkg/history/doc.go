// Package history persists summaries of tally runs.
//
// Each `tally sum --record` invocation stores one Run: the command, the
// input source, how many games were parsed and possible, the result, and
// whether the run failed. Runs live in a SQLite database, opened through
// either the pure-Go modernc.org/sqlite driver ("sqlite", the default) or
// the cgo github.com/mattn/go-sqlite3 driver ("sqlite3").
//
// # Retention
//
// A Pruner deletes runs older than RetentionDays. Its Scheduler runs the
// pruner on a cron schedule while `tally watch` is active; `tally history
// prune` runs it once.
//
//	store, err := history.Open(cfg.History)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	pruner := history.NewPrunerFromConfig(store, cfg.History)
//	if err := pruner.Scheduler().Start(ctx); err != nil {
//	    return err
//	}
package history
