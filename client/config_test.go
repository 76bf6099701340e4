package client

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseConfig(t *testing.T) {
	path := writeConfig(t, "gateway:\n  baseURL: http://localhost:8000\n  timeoutSec: 5\n")

	cfg, err := ParseConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gateway.BaseURL != "http://localhost:8000" {
		t.Errorf("baseURL = %q", cfg.Gateway.BaseURL)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.Timeout())
	}
}

func TestParseConfigDefaults(t *testing.T) {
	path := writeConfig(t, "gateway:\n  baseURL: http://localhost:8000\n")

	cfg, err := ParseConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("timeout = %v, want 10s default", cfg.Timeout())
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing base url", body: "gateway:\n  timeoutSec: 5\n"},
		{name: "negative timeout", body: "gateway:\n  baseURL: http://x\n  timeoutSec: -1\n"},
		{name: "not yaml", body: "{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("want error, got nil")
			}
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	if _, err := ParseConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("want error for missing file")
	}
}
