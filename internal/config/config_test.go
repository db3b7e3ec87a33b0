package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Digits != 10 {
		t.Errorf("expected 10 digits, got %d", cfg.Digits)
	}
	if cfg.Delimiter != "," {
		t.Errorf("expected comma delimiter, got %q", cfg.Delimiter)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %q", cfg.LogLevel)
	}
	if cfg.HistoryPath == "" {
		t.Error("expected a default history path")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Digits != 10 {
		t.Errorf("expected defaults, got digits=%d", cfg.Digits)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"digits": 4, "scientific": true}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Digits != 4 {
		t.Errorf("expected digits=4, got %d", cfg.Digits)
	}
	if !cfg.Scientific {
		t.Error("expected scientific=true")
	}
	// Unset fields keep their defaults.
	if cfg.Delimiter != "," {
		t.Errorf("expected default delimiter, got %q", cfg.Delimiter)
	}
	if cfg.WebPort != 8326 {
		t.Errorf("expected default web port, got %d", cfg.WebPort)
	}
}

func TestLoadReadsLogPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"log_path": "/tmp/elsewhere.log"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogPath != "/tmp/elsewhere.log" {
		t.Errorf("expected log path from file, got %q", cfg.LogPath)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := DefaultConfig()
	cfg.Digits = 6
	cfg.NoColor = true
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Digits != 6 || !loaded.NoColor {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ACAP_LOG_LEVEL", "debug")
	t.Setenv("ACAP_LOG_PATH", "/tmp/acap-test.log")
	t.Setenv("ACAP_HISTORY_PATH", "/tmp/acap-test.db")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug, got %q", cfg.LogLevel)
	}
	if cfg.LogPath != "/tmp/acap-test.log" {
		t.Errorf("unexpected log path %q", cfg.LogPath)
	}
	if cfg.HistoryPath != "/tmp/acap-test.db" {
		t.Errorf("unexpected history path %q", cfg.HistoryPath)
	}
}
