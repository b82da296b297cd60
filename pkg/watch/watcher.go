package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler is called with the path of each input that changed.
type Handler func(ctx context.Context, path string) error

// Config contains configuration for the file watcher.
type Config struct {
	// Path is the input file or directory to watch.
	Path string

	// Debounce is the quiet period after the last event before inputs are
	// re-processed (default: 100ms).
	Debounce time.Duration

	// Extensions restricts directory watches to these file extensions.
	// It is ignored when Path names a single file.
	Extensions []string

	// SkipHidden skips dot-files and dot-directories.
	SkipHidden bool
}

// DefaultConfig returns the default watcher configuration.
func DefaultConfig() Config {
	return Config{
		Debounce:   100 * time.Millisecond,
		Extensions: []string{".txt"},
		SkipHidden: true,
	}
}

// Watcher re-runs a handler whenever watched input files change. Bursts of
// events are coalesced by a Debouncer; each changed path is handled once
// per burst.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	config   Config
	debounce *Debouncer

	// target is the absolute path of a single watched file, empty for
	// directory watches.
	target string

	mu      sync.Mutex
	running bool
	pending map[string]struct{}

	stopOnce sync.Once
	stopCh   chan struct{}
}

// New creates a watcher for cfg.Path. The path must exist.
func New(cfg Config, logger *slog.Logger) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, errors.New("watch path cannot be empty")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultConfig().Debounce
	}
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher:  fsw,
		logger:   logger.With("component", "watch"),
		config:   cfg,
		debounce: NewDebouncer(cfg.Debounce),
		pending:  make(map[string]struct{}),
		stopCh:   make(chan struct{}),
	}, nil
}

// Watch blocks, calling onChange for every changed input, until ctx is
// cancelled or Stop is called. Handler errors are logged and do not end
// the watch.
func (w *Watcher) Watch(ctx context.Context, onChange Handler) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return errors.New("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer w.shutdown()

	if err := w.addPath(w.config.Path); err != nil {
		return fmt.Errorf("failed to watch path: %w", err)
	}

	w.logger.Info("file watcher started",
		"path", w.config.Path,
		"debounce_ms", w.config.Debounce.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("file watcher stopped (context cancelled)")
			return nil

		case <-w.stopCh:
			w.logger.Info("file watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			w.handleEvent(ctx, event, onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			w.logger.Error("file watcher error", "error", err)
		}
	}
}

// Stop ends a running Watch. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

func (w *Watcher) shutdown() {
	w.debounce.Stop()
	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("failed to close watcher", "error", err)
	}

	w.mu.Lock()
	w.running = false
	w.mu.Unlock()
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event, onChange Handler) {
	// New subdirectories of a watched directory are watched too.
	if w.target == "" && event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !w.skip(event.Name) {
			if err := w.addDirectory(event.Name); err != nil {
				w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
			}
			return
		}
	}

	if !w.shouldProcessEvent(event) {
		return
	}

	w.logger.Debug("file event detected", "path", event.Name, "op", event.Op.String())

	w.mu.Lock()
	w.pending[event.Name] = struct{}{}
	w.mu.Unlock()

	w.debounce.Trigger(func() { w.flush(ctx, onChange) })
}

// flush hands every pending path to onChange in sorted order.
func (w *Watcher) flush(ctx context.Context, onChange Handler) {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	sort.Strings(paths)
	for _, p := range paths {
		if ctx.Err() != nil {
			return
		}
		w.logger.Info("input changed", "path", p)
		if err := onChange(ctx, p); err != nil {
			w.logger.Error("processing changed input failed", "path", p, "error", err)
		}
	}
}

// addPath watches a directory tree, or the parent directory of a single
// file so that editors replacing the file do not end the watch.
func (w *Watcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return w.addDirectory(path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.target = abs
	return w.watcher.Add(filepath.Dir(abs))
}

func (w *Watcher) addDirectory(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && w.skip(path) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %q: %w", path, err)
		}
		w.logger.Debug("watching directory", "path", path)
		return nil
	})
}

// shouldProcessEvent reports whether event names a changed input.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}

	if w.target != "" {
		abs, err := filepath.Abs(event.Name)
		return err == nil && abs == w.target
	}

	if w.skip(event.Name) {
		return false
	}
	return w.hasValidExtension(strings.ToLower(filepath.Ext(event.Name)))
}

func (w *Watcher) skip(path string) bool {
	return w.config.SkipHidden && strings.HasPrefix(filepath.Base(path), ".")
}

func (w *Watcher) hasValidExtension(ext string) bool {
	if len(w.config.Extensions) == 0 {
		return true
	}
	for _, valid := range w.config.Extensions {
		if ext == strings.ToLower(valid) {
			return true
		}
	}
	return false
}
