package config

import (
	"testing"
)

func TestInitialize(t *testing.T) {
	reset()
	t.Cleanup(reset)

	path := writeConfig(t, "logging:\n  level: error\n")
	if err := Initialize(path); err != nil {
		t.Fatalf("failed to initialize config: %v", err)
	}

	cfg := GetConfig()
	if cfg == nil {
		t.Fatal("expected non-nil config after initialization")
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("logging.level = %q, want error", cfg.Logging.Level)
	}
}

func TestInitialize_MultipleCallsIgnored(t *testing.T) {
	reset()
	t.Cleanup(reset)

	first := writeConfig(t, "logging:\n  level: debug\n")
	second := writeConfig(t, "logging:\n  level: warn\n")

	if err := Initialize(first); err != nil {
		t.Fatalf("first Initialize() failed: %v", err)
	}
	if err := Initialize(second); err != nil {
		t.Fatalf("second Initialize() failed: %v", err)
	}

	if got := GetConfig().Logging.Level; got != "debug" {
		t.Errorf("logging.level = %q, want debug from first call", got)
	}
}

func TestMustGetConfig_Panics(t *testing.T) {
	reset()
	t.Cleanup(reset)

	defer func() {
		if recover() == nil {
			t.Error("MustGetConfig() did not panic before Initialize")
		}
	}()
	MustGetConfig()
}

func TestSetConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	cfg := DefaultConfig()
	SetConfig(cfg)
	if GetConfig() != cfg {
		t.Error("GetConfig() did not return the config passed to SetConfig")
	}
}
