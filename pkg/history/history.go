package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the outcome of a recorded run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Run is the persisted summary of one CLI invocation.
type Run struct {
	ID        string    `json:"id" yaml:"id"`
	Command   string    `json:"command" yaml:"command"`
	Source    string    `json:"source" yaml:"source"`
	Games     int       `json:"games" yaml:"games"`
	Possible  int       `json:"possible" yaml:"possible"`
	Result    int       `json:"result" yaml:"result"`
	Status    Status    `json:"status" yaml:"status"`
	Error     string    `json:"error,omitempty" yaml:"error,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// ListOptions filters List results. Zero values mean no filter.
type ListOptions struct {
	// Command restricts results to one command name.
	Command string

	// Limit caps the number of runs returned, newest first.
	Limit int
}

// Store persists run summaries.
type Store interface {
	// Record stores run. A missing ID or CreatedAt is filled in.
	Record(ctx context.Context, run *Run) error

	// Get returns the run with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Run, error)

	// List returns runs newest first.
	List(ctx context.Context, opts ListOptions) ([]*Run, error)

	// DeleteBefore removes runs created before cutoff and returns how many.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// Count returns the number of stored runs.
	Count(ctx context.Context) (int64, error)

	// Close releases the store's resources.
	Close() error
}

// ErrNotFound is returned by Get when no run has the requested ID.
var ErrNotFound = errors.New("run not found")

// StorageError represents an error from a storage backend.
type StorageError struct {
	Backend   string // Storage backend type ("sqlite", "sqlite3", "memory")
	Operation string // Operation that failed ("record", "list", "delete", ...)
	Cause     error  // Underlying error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("history storage error [backend=%s, operation=%s]: %v", e.Backend, e.Operation, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

func newStorageError(backend, operation string, cause error) *StorageError {
	return &StorageError{Backend: backend, Operation: operation, Cause: cause}
}

// prepare fills the generated fields of run.
func prepare(run *Run) error {
	if run == nil {
		return errors.New("run cannot be nil")
	}
	if run.Command == "" {
		return errors.New("run command cannot be empty")
	}
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	if run.Status == "" {
		run.Status = StatusSuccess
	}
	return nil
}
