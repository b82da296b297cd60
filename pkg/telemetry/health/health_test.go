package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNew_DefaultTimeout(t *testing.T) {
	if got := New(0).timeout; got != DefaultCheckTimeout {
		t.Errorf("timeout = %v, want %v", got, DefaultCheckTimeout)
	}
	if got := New(time.Second).timeout; got != time.Second {
		t.Errorf("timeout = %v, want 1s", got)
	}
}

func TestRegisterAndNames(t *testing.T) {
	checker := New(time.Second)
	checker.Register("input", func(context.Context) error { return nil })
	checker.Register("history", func(context.Context) error { return nil })
	checker.Register("history", func(context.Context) error { return nil })

	if diff := cmp.Diff([]string{"history", "input"}, checker.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	checker.Unregister("input")
	if diff := cmp.Diff([]string{"history"}, checker.Names()); diff != "" {
		t.Errorf("Names() after Unregister mismatch (-want +got):\n%s", diff)
	}
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]CheckFunc
		wantStatus string
		wantFailed []string
	}{
		{
			name:       "no checks",
			wantStatus: StatusReady,
		},
		{
			name: "all healthy",
			checks: map[string]CheckFunc{
				"history": func(context.Context) error { return nil },
				"input":   func(context.Context) error { return nil },
			},
			wantStatus: StatusReady,
		},
		{
			name: "one failing",
			checks: map[string]CheckFunc{
				"history": func(context.Context) error { return errors.New("database is locked") },
				"input":   func(context.Context) error { return nil },
			},
			wantStatus: StatusDegraded,
			wantFailed: []string{"history"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := New(time.Second)
			for name, check := range tt.checks {
				checker.Register(name, check)
			}

			report := checker.Readiness(context.Background())
			if report.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", report.Status, tt.wantStatus)
			}

			var failed []string
			for _, name := range checker.Names() {
				if report.Checks[name].Status != StatusOK {
					failed = append(failed, name)
				}
			}
			if diff := cmp.Diff(tt.wantFailed, failed); diff != "" {
				t.Errorf("failed checks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadiness_Timeout(t *testing.T) {
	checker := New(20 * time.Millisecond)
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })
	checker.Register("slow", func(ctx context.Context) error {
		<-block
		return nil
	})

	report := checker.Readiness(context.Background())
	if got := report.Checks["slow"]; got.Status != StatusUnhealthy || got.Message != "health check timeout" {
		t.Errorf("slow check = %+v, want a timeout", got)
	}
}

func TestLivenessHandler(t *testing.T) {
	checker := New(time.Second)
	checker.Register("failing", func(context.Context) error { return errors.New("down") })

	tests := []struct {
		method   string
		wantCode int
		wantBody bool
	}{
		{http.MethodGet, http.StatusOK, true},
		{http.MethodHead, http.StatusOK, false},
		{http.MethodPost, http.StatusMethodNotAllowed, true},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			checker.LivenessHandler()(rec, httptest.NewRequest(tt.method, "/health", nil))

			if rec.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", rec.Code, tt.wantCode)
			}
			if (rec.Body.Len() > 0) != tt.wantBody {
				t.Errorf("body = %q, wantBody %v", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestReadinessHandler(t *testing.T) {
	checker := New(time.Second)
	healthy := true
	checker.Register("input", func(context.Context) error {
		if healthy {
			return nil
		}
		return errors.New("stat games.txt: no such file or directory")
	})

	get := func() (int, Report) {
		rec := httptest.NewRecorder()
		checker.ReadinessHandler()(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

		var report Report
		if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		return rec.Code, report
	}

	if code, report := get(); code != http.StatusOK || report.Status != StatusReady {
		t.Errorf("healthy: code=%d status=%q", code, report.Status)
	}

	healthy = false
	code, report := get()
	if code != http.StatusServiceUnavailable || report.Status != StatusDegraded {
		t.Errorf("unhealthy: code=%d status=%q", code, report.Status)
	}
	if report.Checks["input"].Message == "" {
		t.Error("failing check should carry a message")
	}
}

func TestRegister_MountsEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	Register(mux, New(time.Second), NewVersionInfo("1.2.3", "abc123", "2026-10-15"))

	for _, path := range []string{"/health", "/ready", "/version"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))
	var info VersionInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if info.Version != "1.2.3" || info.Commit != "abc123" || info.GoVersion == "" {
		t.Errorf("version info = %+v", info)
	}
}
