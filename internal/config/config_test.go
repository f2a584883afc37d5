package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.APIBase != "http://localhost:8026" {
		t.Errorf("expected default api_base %q, got %q", "http://localhost:8026", cfg.APIBase)
	}
	if cfg.Port != 5500 {
		t.Errorf("expected default port 5500, got %d", cfg.Port)
	}
	if cfg.NoticeDelay != 3*time.Second {
		t.Errorf("expected default notice_delay 3s, got %v", cfg.NoticeDelay)
	}
	if cfg.LogLevel != "" {
		t.Errorf("expected silent default log level, got %q", cfg.LogLevel)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.lexicon.yml")

	original := DefaultConfig()
	original.APIBase = "https://dict.example.com"
	original.Port = 9000
	original.DataDir = "state"
	original.NoticeDelay = 5 * time.Second
	original.LogLevel = "debug"
	original.Title = "Words"

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.APIBase != original.APIBase {
		t.Errorf("api_base: got %q, want %q", loaded.APIBase, original.APIBase)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.DataDir != original.DataDir {
		t.Errorf("data_dir: got %q, want %q", loaded.DataDir, original.DataDir)
	}
	if loaded.NoticeDelay != original.NoticeDelay {
		t.Errorf("notice_delay: got %v, want %v", loaded.NoticeDelay, original.NoticeDelay)
	}
	if loaded.LogLevel != original.LogLevel {
		t.Errorf("log_level: got %q, want %q", loaded.LogLevel, original.LogLevel)
	}
	if loaded.Title != original.Title {
		t.Errorf("title: got %q, want %q", loaded.Title, original.Title)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.APIBase != DefaultConfig().APIBase {
		t.Errorf("expected default api_base, got %q", cfg.APIBase)
	}
}

func TestLoadDurationString(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")
	if err := os.WriteFile(path, []byte("notice_delay: 750ms\nrequest_timeout: 2s\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.NoticeDelay != 750*time.Millisecond {
		t.Errorf("notice_delay: got %v", cfg.NoticeDelay)
	}
	if cfg.RequestTimeout != 2*time.Second {
		t.Errorf("request_timeout: got %v", cfg.RequestTimeout)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("LEXICON_API_BASE", "http://10.0.0.5:8026")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.APIBase != "http://10.0.0.5:8026" {
		t.Errorf("env override failed: got %q", loaded.APIBase)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty api base", func(c *Config) { c.APIBase = "" }, true},
		{"relative api base", func(c *Config) { c.APIBase = "/api" }, true},
		{"ftp api base", func(c *Config) { c.APIBase = "ftp://example.com" }, true},
		{"negative port", func(c *Config) { c.Port = -1 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, true},
		{"zero notice delay", func(c *Config) { c.NoticeDelay = 0 }, true},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"debug log level", func(c *Config) { c.LogLevel = "debug" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPromptValidators(t *testing.T) {
	if err := validateBaseURL("http://localhost:8026"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validateBaseURL("localhost"); err == nil {
		t.Error("expected error for URL without scheme")
	}
	if err := validatePort("5500"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validatePort("abc"); err == nil {
		t.Error("expected error for non-numeric port")
	}
}
