// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reservations.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8080/api" {
		t.Fatalf("api.base_url = %q", cfg.API.BaseURL)
	}
	if cfg.Payments.BaseURL != "http://localhost:8081/api" {
		t.Fatalf("payments.base_url = %q", cfg.Payments.BaseURL)
	}
	if cfg.API.RequestTimeout() != 30*time.Second {
		t.Fatalf("api.timeout = %s", cfg.API.Timeout)
	}
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: https://tickets.example.com/api
  timeout: 10s
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.API.BaseURL != "https://tickets.example.com/api" {
		t.Fatalf("api.base_url = %q", cfg.API.BaseURL)
	}
	if cfg.API.RequestTimeout() != 10*time.Second {
		t.Fatalf("api.timeout = %s", cfg.API.Timeout)
	}
	// Untouched sections keep their defaults.
	if cfg.Payments.BaseURL != "http://localhost:8081/api" {
		t.Fatalf("payments.base_url = %q", cfg.Payments.BaseURL)
	}
}

func TestLoadFileMissingIsError(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("LoadFile on a missing file succeeded")
	}
}

func TestLoadWithoutEnvVarUsesDefaults(t *testing.T) {
	t.Setenv("RESERVATIONS_CONFIG", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != Default().API.BaseURL {
		t.Fatalf("api.base_url = %q", cfg.API.BaseURL)
	}
}

func TestLoadHonorsEnvVar(t *testing.T) {
	path := writeConfig(t, "api:\n  base_url: http://platform:9000/api\n")
	t.Setenv("RESERVATIONS_CONFIG", path)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://platform:9000/api" {
		t.Fatalf("api.base_url = %q", cfg.API.BaseURL)
	}
}

func TestExpandVariables(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	path := writeConfig(t, "session:\n  dir: ${HOME}/.reservations\n")
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Session.Dir != "/home/tester/.reservations" {
		t.Fatalf("session.dir = %q", cfg.Session.Dir)
	}
}

func TestExpandVariablesDefault(t *testing.T) {
	if got := expandVars("${RESERVATIONS_UNSET_VAR:-fallback}/x", nil); got != "fallback/x" {
		t.Fatalf("expandVars = %q", got)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty api url", func(c *Config) { c.API.BaseURL = "" }},
		{"non-http scheme", func(c *Config) { c.API.BaseURL = "ftp://example.com/api" }},
		{"missing host", func(c *Config) { c.Payments.BaseURL = "http://" }},
		{"unparseable timeout", func(c *Config) { c.API.Timeout = "soon" }},
		{"zero timeout", func(c *Config) { c.API.Timeout = "0s" }},
		{"negative timeout", func(c *Config) { c.API.Timeout = "-1s" }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate accepted a bad config")
			}
		})
	}
}
