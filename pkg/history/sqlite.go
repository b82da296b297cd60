package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // cgo SQLite driver, registered as "sqlite3"
	_ "modernc.org/sqlite"          // pure-Go SQLite driver, registered as "sqlite"
)

// Driver names accepted by OpenSQLite.
const (
	DriverModernc = "sqlite"
	DriverCgo     = "sqlite3"
)

// SQLiteConfig configures the SQLite store.
type SQLiteConfig struct {
	// Driver selects the database/sql driver: "sqlite" (modernc.org/sqlite,
	// pure Go) or "sqlite3" (github.com/mattn/go-sqlite3, requires cgo).
	// Default: "sqlite"
	Driver string

	// Path is the database file path. Parent directories are created.
	Path string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	command    TEXT NOT NULL,
	source     TEXT NOT NULL,
	games      INTEGER NOT NULL,
	possible   INTEGER NOT NULL,
	result     INTEGER NOT NULL,
	status     TEXT NOT NULL,
	error      TEXT,
	created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
CREATE INDEX IF NOT EXISTS idx_runs_command ON runs(command);
`

// SQLiteStore implements Store on a SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	driver string
	logger *slog.Logger

	recordStmt *sql.Stmt
	getStmt    *sql.Stmt
	deleteStmt *sql.Stmt
}

// OpenSQLite opens (creating if needed) the history database described by cfg.
func OpenSQLite(cfg SQLiteConfig) (*SQLiteStore, error) {
	if cfg.Path == "" {
		return nil, errors.New("db path cannot be empty")
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverModernc
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, newStorageError(cfg.Driver, "mkdir", err)
		}
	}

	db, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, newStorageError(cfg.Driver, "open", err)
	}

	// SQLite only supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &SQLiteStore{
		db:     db,
		driver: cfg.Driver,
		logger: slog.Default().With("component", "history.sqlite"),
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, newStorageError(cfg.Driver, "create_schema", err)
	}

	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}

	s.logger.Debug("history store opened", "path", cfg.Path, "driver", cfg.Driver)

	return s, nil
}

// buildDSN renders the connection string in the dialect each driver expects.
func buildDSN(cfg SQLiteConfig) (string, error) {
	timeout := cfg.BusyTimeout.Milliseconds()
	switch cfg.Driver {
	case DriverModernc:
		return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
			cfg.Path, timeout), nil
	case DriverCgo:
		return fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_synchronous=NORMAL",
			cfg.Path, timeout), nil
	default:
		return "", fmt.Errorf("unsupported sqlite driver %q", cfg.Driver)
	}
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.recordStmt, err = s.db.Prepare(`
		INSERT INTO runs (id, command, source, games, possible, result, status, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return newStorageError(s.driver, "prepare_record", err)
	}

	s.getStmt, err = s.db.Prepare(`
		SELECT id, command, source, games, possible, result, status, error, created_at
		FROM runs
		WHERE id = ?
	`)
	if err != nil {
		return newStorageError(s.driver, "prepare_get", err)
	}

	s.deleteStmt, err = s.db.Prepare(`DELETE FROM runs WHERE created_at < ?`)
	if err != nil {
		return newStorageError(s.driver, "prepare_delete", err)
	}

	return nil
}

// Record stores run.
func (s *SQLiteStore) Record(ctx context.Context, run *Run) error {
	if err := prepare(run); err != nil {
		return err
	}

	var errVal any
	if run.Error != "" {
		errVal = run.Error
	}

	_, err := s.recordStmt.ExecContext(ctx,
		run.ID, run.Command, run.Source,
		run.Games, run.Possible, run.Result,
		string(run.Status), errVal, run.CreatedAt.UnixNano(),
	)
	if err != nil {
		return newStorageError(s.driver, "record", err)
	}
	return nil
}

// Get returns the run with the given ID.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Run, error) {
	run, err := scanRun(s.getStmt.QueryRowContext(ctx, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, newStorageError(s.driver, "get", err)
	}
	return run, nil
}

// List returns runs newest first.
func (s *SQLiteStore) List(ctx context.Context, opts ListOptions) ([]*Run, error) {
	query := `SELECT id, command, source, games, possible, result, status, error, created_at FROM runs`
	var args []any
	if opts.Command != "" {
		query += ` WHERE command = ?`
		args = append(args, opts.Command)
	}
	query += ` ORDER BY created_at DESC, id`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, newStorageError(s.driver, "list", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, newStorageError(s.driver, "scan", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, newStorageError(s.driver, "list", err)
	}
	return runs, nil
}

// DeleteBefore removes runs created before cutoff.
func (s *SQLiteStore) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.deleteStmt.ExecContext(ctx, cutoff.UnixNano())
	if err != nil {
		return 0, newStorageError(s.driver, "delete", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, newStorageError(s.driver, "delete", err)
	}
	return n, nil
}

// Count returns the number of stored runs.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, newStorageError(s.driver, "count", err)
	}
	return n, nil
}

// Close closes prepared statements and the database.
func (s *SQLiteStore) Close() error {
	for _, stmt := range []*sql.Stmt{s.recordStmt, s.getStmt, s.deleteStmt} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var (
		run       Run
		status    string
		errText   sql.NullString
		createdAt int64
	)
	if err := row.Scan(
		&run.ID, &run.Command, &run.Source,
		&run.Games, &run.Possible, &run.Result,
		&status, &errText, &createdAt,
	); err != nil {
		return nil, err
	}
	run.Status = Status(status)
	run.Error = errText.String
	run.CreatedAt = time.Unix(0, createdAt).UTC()
	return &run, nil
}
