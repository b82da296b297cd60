package logging

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestContextKeys(t *testing.T) {
	ctx := context.Background()

	ctx = WithRunID(ctx, "run-123")
	if got := GetRunID(ctx); got != "run-123" {
		t.Errorf("GetRunID() = %q, want %q", got, "run-123")
	}

	ctx = WithSource(ctx, "games.txt")
	if got := GetSource(ctx); got != "games.txt" {
		t.Errorf("GetSource() = %q, want %q", got, "games.txt")
	}

	ctx = WithCommand(ctx, "sum")
	if got := GetCommand(ctx); got != "sum" {
		t.Errorf("GetCommand() = %q, want %q", got, "sum")
	}
}

func TestContextKeys_Missing(t *testing.T) {
	ctx := context.Background()
	if GetRunID(ctx) != "" || GetSource(ctx) != "" || GetCommand(ctx) != "" {
		t.Error("expected empty values from a bare context")
	}
}

func TestExtractContextFields(t *testing.T) {
	ctx := WithSource(context.Background(), "games.txt")
	ctx = WithRunID(ctx, "run-1")

	want := []any{"run_id", "run-1", "source", "games.txt"}
	if diff := cmp.Diff(want, extractContextFields(ctx)); diff != "" {
		t.Errorf("extractContextFields() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == b {
		t.Error("NewRunID() returned the same ID twice")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("NewRunID() = %q is not a UUID: %v", a, err)
	}
}
