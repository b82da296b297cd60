package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

// recorder collects handled paths.
type recorder struct {
	mu    sync.Mutex
	paths []string
	ch    chan string
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan string, 16)}
}

func (r *recorder) handle(ctx context.Context, path string) error {
	r.mu.Lock()
	r.paths = append(r.paths, path)
	r.mu.Unlock()
	select {
	case r.ch <- path:
	default:
	}
	return nil
}

func (r *recorder) wait(t *testing.T) string {
	t.Helper()
	select {
	case p := <-r.ch:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("handler not called after file modification")
		return ""
	}
}

func startWatcher(t *testing.T, cfg Config, h Handler) (*Watcher, context.CancelFunc) {
	t.Helper()
	w, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Watch(ctx, h)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// Wait for the watcher to register its paths.
	time.Sleep(100 * time.Millisecond)
	return w, cancel
}

func TestNew(t *testing.T) {
	if _, err := New(Config{}, nil); err == nil {
		t.Error("New() with empty path should fail")
	}

	w, err := New(Config{Path: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if w.config.Debounce != DefaultConfig().Debounce {
		t.Errorf("debounce = %v, want default", w.config.Debounce)
	}
}

func TestWatcher_SingleFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "games.txt")
	if err := os.WriteFile(file, []byte("Game 1: 1 red\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := newRecorder()
	startWatcher(t, Config{Path: file, Debounce: 50 * time.Millisecond}, rec.handle)

	// A sibling file must not trigger the handler.
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(file, []byte("Game 1: 2 red\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := rec.wait(t)
	abs, _ := filepath.Abs(file)
	if gotAbs, _ := filepath.Abs(got); gotAbs != abs {
		t.Errorf("handled %q, want %q", got, file)
	}
}

func TestWatcher_Directory(t *testing.T) {
	dir := t.TempDir()

	rec := newRecorder()
	startWatcher(t, Config{
		Path:       dir,
		Debounce:   50 * time.Millisecond,
		Extensions: []string{".txt"},
		SkipHidden: true,
	}, rec.handle)

	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".hidden.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	games := filepath.Join(dir, "games.txt")
	if err := os.WriteFile(games, []byte("Game 1: 1 red\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := rec.wait(t); got != games {
		t.Errorf("handled %q, want %q", got, games)
	}

	time.Sleep(150 * time.Millisecond)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	for _, p := range rec.paths {
		if p != games {
			t.Errorf("unexpected path handled: %q", p)
		}
	}
}

func TestWatcher_Debouncing(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "games.txt")
	if err := os.WriteFile(file, []byte("Game 1: 1 red\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	startWatcher(t, Config{Path: file, Debounce: 100 * time.Millisecond}, func(ctx context.Context, path string) error {
		calls.Add(1)
		return nil
	})

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(file, []byte("Game 1: 3 blue\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	time.Sleep(300 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("handler called %d times, want 1", got)
	}
}

func TestWatcher_Stop(t *testing.T) {
	w, err := New(Config{Path: t.TempDir()}, nil)
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- w.Watch(context.Background(), func(context.Context, string) error { return nil }) }()
	time.Sleep(50 * time.Millisecond)

	w.Stop()
	w.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Watch() did not return after Stop()")
	}
}

func TestWatcher_MissingPath(t *testing.T) {
	w, err := New(Config{Path: filepath.Join(t.TempDir(), "missing.txt")}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Watch(context.Background(), nil); err == nil {
		t.Error("Watch() on a missing path should fail")
	}
}

func TestWatcher_ShouldProcessEvent(t *testing.T) {
	w := &Watcher{config: Config{Extensions: []string{".TXT"}, SkipHidden: true}}

	tests := []struct {
		event fsnotify.Event
		want  bool
	}{
		{fsnotify.Event{Name: "/in/games.txt", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "/in/games.txt", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "/in/games.txt", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "/in/games.txt", Op: fsnotify.Remove}, false},
		{fsnotify.Event{Name: "/in/games.log", Op: fsnotify.Write}, false},
		{fsnotify.Event{Name: "/in/.games.txt", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		if got := w.shouldProcessEvent(tt.event); got != tt.want {
			t.Errorf("shouldProcessEvent(%v) = %v, want %v", tt.event, got, tt.want)
		}
	}
}

func TestDebouncer_Trigger(t *testing.T) {
	debouncer := NewDebouncer(100 * time.Millisecond)
	defer debouncer.Stop()

	var callCount atomic.Int32
	for i := 0; i < 5; i++ {
		debouncer.Trigger(func() { callCount.Add(1) })
		time.Sleep(20 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	if count := callCount.Load(); count != 1 {
		t.Errorf("callback called %d times, want 1", count)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	debouncer := NewDebouncer(100 * time.Millisecond)

	var callCount atomic.Int32
	debouncer.Trigger(func() { callCount.Add(1) })
	debouncer.Stop()
	debouncer.Trigger(func() { callCount.Add(1) })

	time.Sleep(150 * time.Millisecond)
	if count := callCount.Load(); count != 0 {
		t.Errorf("callback called %d times after Stop(), want 0", count)
	}
}

func TestDebouncer_StopWaitsForRunningCallback(t *testing.T) {
	debouncer := NewDebouncer(10 * time.Millisecond)

	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool
	debouncer.Trigger(func() {
		close(started)
		<-release
		finished.Store(true)
	})

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("callback did not start")
	}

	stopped := make(chan struct{})
	go func() {
		debouncer.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop() returned while the callback was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop() did not return after the callback finished")
	}
	if !finished.Load() {
		t.Error("Stop() returned before the callback finished")
	}
}

func TestWatcher_WatchWaitsForInFlightHandler(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "games.txt")
	if err := os.WriteFile(file, []byte("Game 1: 1 red\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(Config{Path: file, Debounce: 20 * time.Millisecond}, nil)
	if err != nil {
		t.Fatal(err)
	}

	started := make(chan struct{}, 1)
	release := make(chan struct{})
	var finished atomic.Bool
	handler := func(context.Context, string) error {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		finished.Store(true)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Watch(ctx, handler)
	}()
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(file, []byte("Game 1: 2 red\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		close(release)
		cancel()
		t.Fatal("handler not called after file modification")
	}

	cancel()
	select {
	case <-done:
		t.Fatal("Watch() returned while a handler was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch() did not return after the handler finished")
	}
	if !finished.Load() {
		t.Error("Watch() returned before the handler finished")
	}
}
