// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jniedzwiecki/reservations-ui/lib/api"
)

const (
	tokenFileName = "token"
	userFileName  = "user.json"
)

// DefaultDir returns the session storage directory. Checks the
// RESERVATIONS_SESSION_DIR environment variable first, then falls back
// to ~/.config/reservations.
func DefaultDir() string {
	if envDir := os.Getenv("RESERVATIONS_SESSION_DIR"); envDir != "" {
		return envDir
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback — this should rarely happen.
			return filepath.Join(os.TempDir(), "reservations")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "reservations")
}

// Store persists the bearer token and the user record as two files
// under one directory. Access is synchronous and unlocked: the client
// is single-user and single-process per invocation.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. An empty dir selects
// DefaultDir().
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Store{dir: dir}
}

// Dir returns the storage directory.
func (s *Store) Dir() string { return s.dir }

// SaveToken writes the bearer token. The parent directory is created
// 0700 and the token file 0600 since it contains an access credential.
func (s *Store) SaveToken(token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, tokenFileName)
	if err := os.WriteFile(path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("writing token file %s: %w", path, err)
	}
	return nil
}

// LoadToken reads the persisted bearer token. A missing file is not an
// error: it returns "" (no session).
func (s *Store) LoadToken() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading token file: %w", err)
	}
	return string(data), nil
}

// Token implements api.TokenSource. Read errors degrade to an empty
// token: the request goes out anonymous and the server's 401 does the
// rest.
func (s *Store) Token() string {
	token, err := s.LoadToken()
	if err != nil {
		return ""
	}
	return token
}

// SaveUser writes the serialized user record alongside the token.
func (s *Store) SaveUser(user *api.User) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", s.dir, err)
	}
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling user record: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(s.dir, userFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing user file %s: %w", path, err)
	}
	return nil
}

// LoadUser reads the persisted user record. A missing file returns
// (nil, nil).
func (s *Store) LoadUser() (*api.User, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, userFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading user file: %w", err)
	}
	var user api.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("parsing user file: %w", err)
	}
	return &user, nil
}

// Clear removes both entries. Missing files are ignored so Clear is
// idempotent.
func (s *Store) Clear() error {
	var firstErr error
	for _, name := range []string{tokenFileName, userFileName} {
		err := os.Remove(filepath.Join(s.dir, name))
		if err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = fmt.Errorf("removing %s: %w", name, err)
		}
	}
	return firstErr
}
