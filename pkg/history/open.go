package history

import "mercator-hq/tally/pkg/config"

// Open returns the store described by cfg: a SQLite store when history is
// enabled, an in-memory store otherwise.
func Open(cfg config.HistoryConfig) (Store, error) {
	if !cfg.Enabled {
		return NewMemoryStore(), nil
	}
	return OpenSQLite(SQLiteConfig{
		Driver:      cfg.Driver,
		Path:        cfg.Path,
		BusyTimeout: cfg.BusyTimeout,
	})
}

// NewPrunerFromConfig creates a pruner for store using the retention
// settings in cfg.
func NewPrunerFromConfig(store Store, cfg config.HistoryConfig) *Pruner {
	return NewPruner(store, &RetentionConfig{
		RetentionDays: cfg.RetentionDays,
		PruneSchedule: cfg.PruneSchedule,
	})
}
