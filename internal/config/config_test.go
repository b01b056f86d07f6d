package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics should be enabled by default")
	}
	if cfg.Watcher.Enabled {
		t.Error("Watcher should be disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig should fall back to defaults: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Logging.Level = "debug"
	cfg.Watcher.Enabled = true
	cfg.Watcher.DebounceMs = 250

	if err := cfg.Save(dir); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, ".filesavant", "config.json")); err != nil {
		t.Fatalf("Config file not written: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", loaded.Logging.Level)
	}
	if !loaded.Watcher.Enabled {
		t.Error("Watcher.Enabled should survive round trip")
	}
	if loaded.Watcher.DebounceMs != 250 {
		t.Errorf("Watcher.DebounceMs = %d, want 250", loaded.Watcher.DebounceMs)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Version = 99
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for unsupported version")
	}

	cfg = DefaultConfig()
	cfg.Watcher.DebounceMs = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for negative debounce")
	}
}
