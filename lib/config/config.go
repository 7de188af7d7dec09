// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the client configuration.
type Config struct {
	// API configures the main platform endpoint.
	API APIConfig `yaml:"api"`

	// Payments configures the payment processor endpoint. Payments run
	// on a separate service with its own base URL.
	Payments PaymentsConfig `yaml:"payments"`

	// Session configures where the token and user record are stored.
	Session SessionConfig `yaml:"session"`
}

// APIConfig configures the main platform endpoint.
type APIConfig struct {
	// BaseURL is the platform API root, including the /api prefix.
	// Default: http://localhost:8080/api
	BaseURL string `yaml:"base_url"`

	// Timeout bounds each HTTP request, in time.ParseDuration syntax.
	// Default: 30s
	Timeout string `yaml:"timeout"`
}

// RequestTimeout parses the configured timeout. Call Validate first;
// an unparseable value falls back to the default here.
func (c APIConfig) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// PaymentsConfig configures the payment processor endpoint.
type PaymentsConfig struct {
	// BaseURL is the payment API root, including the /api prefix.
	// Default: http://localhost:8081/api
	BaseURL string `yaml:"base_url"`
}

// SessionConfig configures session persistence.
type SessionConfig struct {
	// Dir is the directory holding the token and user record.
	// Empty selects the default (RESERVATIONS_SESSION_DIR, then
	// ~/.config/reservations).
	Dir string `yaml:"dir"`
}

// Default returns the default configuration. These defaults make the
// client work against a locally running platform with no config file
// at all.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080/api",
			Timeout: "30s",
		},
		Payments: PaymentsConfig{
			BaseURL: "http://localhost:8081/api",
		},
	}
}

// Load loads configuration from the RESERVATIONS_CONFIG environment
// variable when set, otherwise returns the defaults. A set variable
// pointing at an unreadable file is an error, not a silent fallback.
func Load() (*Config, error) {
	configPath := os.Getenv("RESERVATIONS_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merged over
// the defaults. Environment variables do not override file values; the
// only expansion performed is ${VAR} and ${VAR:-default} in paths and
// URLs for portability.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.expandVariables()
	return cfg, nil
}

func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.API.BaseURL = expandVars(c.API.BaseURL, vars)
	c.Payments.BaseURL = expandVars(c.Payments.BaseURL, vars)
	c.Session.Dir = expandVars(c.Session.Dir, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := validateBaseURL("api.base_url", c.API.BaseURL); err != nil {
		errs = append(errs, err)
	}
	if err := validateBaseURL("payments.base_url", c.Payments.BaseURL); err != nil {
		errs = append(errs, err)
	}
	if d, err := time.ParseDuration(c.API.Timeout); err != nil {
		errs = append(errs, fmt.Errorf("api.timeout: %w", err))
	} else if d <= 0 {
		errs = append(errs, fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func validateBaseURL(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must be an http or https URL, got %q", field, value)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s is missing a host: %q", field, value)
	}
	return nil
}
