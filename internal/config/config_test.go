package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SourceURL != DefaultSourceURL {
		t.Errorf("expected default source url, but got %s", cfg.SourceURL)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("expected timeout 60s, but got %s", cfg.Timeout)
	}
	if got := cfg.CachePath(); got != filepath.Join("downloads", "data.csv") {
		t.Errorf("expected cache path downloads/data.csv, but got %s", got)
	}
	if cfg.Logger.Level != "INFO" {
		t.Errorf("expected logger level INFO, but got %s", cfg.Logger.Level)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("cache_dir: /tmp/agri\ntimeout: 5s\nchart:\n  width: 20\nlogger:\n  level: DEBUG\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CacheDir != "/tmp/agri" {
		t.Errorf("expected cache dir /tmp/agri, but got %s", cfg.CacheDir)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, but got %s", cfg.Timeout)
	}
	if cfg.Chart.Width != 20 || cfg.Chart.Height != 8 {
		t.Errorf("expected chart 20x8, but got %vx%v", cfg.Chart.Width, cfg.Chart.Height)
	}
	if cfg.Logger.Level != "DEBUG" {
		t.Errorf("expected logger level DEBUG, but got %s", cfg.Logger.Level)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AGRIEXPLORER_OUTPUT_DIR", "out")
	t.Setenv("AGRIEXPLORER_LOGGER_FORMAT", "JSON")

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("expected output dir out, but got %s", cfg.OutputDir)
	}
	if cfg.Logger.Format != "JSON" {
		t.Errorf("expected logger format JSON, but got %s", cfg.Logger.Format)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error, but got nil")
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Chdir(t.TempDir())
	v := New()
	v.Set("timeout", "0s")

	if _, err := Load(v, ""); err == nil {
		t.Fatal("expected error, but got nil")
	}
}
