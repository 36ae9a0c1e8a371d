package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chefctl/internal/platform/config"
)

func TestDefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := config.New("")
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.BaseURL == "" || cfg.AccessKey == "" {
		t.Fatalf("defaults must fill endpoint and key, got %+v", cfg)
	}
	if !strings.HasSuffix(cfg.CredentialsPath, filepath.Join(".config", "chefctl", "credentials.json")) {
		t.Fatalf("unexpected credentials path %s", cfg.CredentialsPath)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("expected default timeout, got %v", cfg.Timeout)
	}
}

func TestYAMLFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "base_url: http://localhost:9999/ws\ntimeout: 5s\ncredentials_path: " + filepath.Join(dir, "creds.json") + "\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.New(path)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.BaseURL != "http://localhost:9999/ws" {
		t.Fatalf("base url not overridden: %s", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("timeout not overridden: %v", cfg.Timeout)
	}
	if cfg.AccessKey == "" {
		t.Fatalf("unset fields must keep defaults")
	}
}

func TestExplicitMissingFileFails(t *testing.T) {
	if _, err := config.New(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("explicit missing config file must fail")
	}
}

func TestUnparseableTimeoutFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("timeout: soon\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(path); err == nil {
		t.Fatalf("non-duration timeout must fail")
	}
}

func TestMalformedYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("base_url: [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(path); err == nil {
		t.Fatalf("malformed config must fail")
	}
}
