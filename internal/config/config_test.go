package config

import (
	"path/filepath"
	"testing"

	"findmax/internal/render"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Render.BufferSize != render.DefaultBufferSize {
		t.Errorf("expected BufferSize=%d, got %d", render.DefaultBufferSize, cfg.Render.BufferSize)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected Level=info, got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	// Ensure no env vars interfere
	t.Setenv("FINDMAX_INPUT", "")
	t.Setenv("FINDMAX_LOG_LEVEL", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Input = "4,8,15,16,23,42"
	cfg.Logging.Level = "debug"
	cfg.Render.BufferSize = 128

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Input != "4,8,15,16,23,42" {
		t.Errorf("expected Input=4,8,15,16,23,42, got %s", loaded.Input)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %s", loaded.Logging.Level)
	}
	if loaded.Render.BufferSize != 128 {
		t.Errorf("expected BufferSize=128, got %d", loaded.Render.BufferSize)
	}
}

func TestConfig_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("FINDMAX_INPUT", "")
	t.Setenv("FINDMAX_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default Level=info, got %s", cfg.Logging.Level)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FINDMAX_INPUT", "9,9,9")
	t.Setenv("FINDMAX_LOG_LEVEL", "warn")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	if cfg.Input != "9,9,9" {
		t.Errorf("expected Input=9,9,9, got %s", cfg.Input)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected Level=warn, got %s", cfg.Logging.Level)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}

	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid level")
	}

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid format")
	}

	cfg = DefaultConfig()
	cfg.Render.BufferSize = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero buffer size")
	}
}
