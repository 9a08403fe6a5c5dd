package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// Tests in this package share viper's global state, so none run in parallel.

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg := Load()
	if cfg.APIKey != "" {
		t.Errorf("APIKey default = %q, want empty", cfg.APIKey)
	}
	if cfg.BaseURL != "https://api.themoviedb.org/3" {
		t.Errorf("BaseURL default = %q", cfg.BaseURL)
	}
	if cfg.DataDir == "" {
		t.Error("DataDir default is empty")
	}
	if !strings.HasSuffix(cfg.DataDir, ".marquee") {
		t.Errorf("DataDir = %q, want a .marquee directory", cfg.DataDir)
	}
	if cfg.Verbose {
		t.Error("Verbose default = true")
	}
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := filepath.Join(t.TempDir(), ".marquee.yaml")
	content := "api_key: abc123\nbase_url: http://localhost:9999\nverbose: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	cfg := Load()
	if cfg.APIKey != "abc123" {
		t.Errorf("APIKey = %q, want abc123", cfg.APIKey)
	}
	if cfg.BaseURL != "http://localhost:9999" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestReloadPicksUpEdit(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := filepath.Join(t.TempDir(), ".marquee.yaml")
	if err := os.WriteFile(path, []byte("api_key: before\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}
	if cfg := Load(); cfg.APIKey != "before" {
		t.Fatalf("APIKey = %q, want before", cfg.APIKey)
	}

	if err := os.WriteFile(path, []byte("api_key: after\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}
	if cfg := Reload(); cfg.APIKey != "after" {
		t.Errorf("APIKey after Reload = %q, want after", cfg.APIKey)
	}
}

func TestDataDirPaths(t *testing.T) {
	cfg := Config{DataDir: "/tmp/marquee-test"}
	if got := cfg.DatabasePath(); got != filepath.Join("/tmp/marquee-test", "marquee.db") {
		t.Errorf("DatabasePath = %q", got)
	}
	if got := cfg.SessionLogPath(); got != filepath.Join("/tmp/marquee-test", "session.jsonl") {
		t.Errorf("SessionLogPath = %q", got)
	}
}
