// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jniedzwiecki/reservations-ui/lib/api"
	"github.com/jniedzwiecki/reservations-ui/lib/clock"
)

// Authenticator is the slice of the API the Manager needs for login
// and registration. *api.AuthService satisfies it; tests substitute a
// fake that mints their own tokens.
type Authenticator interface {
	Login(ctx context.Context, request api.LoginRequest) (*api.AuthResponse, error)
	Register(ctx context.Context, request api.RegisterRequest) (*api.AuthResponse, error)
}

// ManagerConfig holds the dependencies for creating a Manager.
type ManagerConfig struct {
	// Store persists the token and user record. Required.
	Store *Store
	// Auth performs login and registration. May be nil for read-only
	// session inspection (whoami, guards).
	Auth Authenticator
	// Clock drives expiry checks. If nil, clock.Real() is used.
	Clock clock.Clock
	// Logger is used for structured logging. If nil, slog.Default().
	Logger *slog.Logger
}

// Manager owns the current-user session state. It reconciles persisted
// state on construction, answers authentication and role queries, and
// publishes session changes to subscribers.
//
// Manager is safe for concurrent use; in practice all access happens
// on the UI goroutine plus short-lived command goroutines.
type Manager struct {
	store  *Store
	auth   Authenticator
	clock  clock.Clock
	logger *slog.Logger

	mu          sync.Mutex
	current     *api.User
	subscribers []chan *api.User
}

// NewManager creates a Manager and reconciles persisted state: the
// token and user record must both be present and the token still
// valid, otherwise everything is cleared and the session starts
// anonymous.
func NewManager(config ManagerConfig) *Manager {
	c := config.Clock
	if c == nil {
		c = clock.Real()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := &Manager{
		store:  config.Store,
		auth:   config.Auth,
		clock:  c,
		logger: logger,
	}
	m.loadPersistedSession()
	return m
}

// loadPersistedSession restores the cached user when both persisted
// entries exist and the token has not expired. Anything short of that
// clears all state: a half-written or stale session is worse than no
// session.
func (m *Manager) loadPersistedSession() {
	token, err := m.store.LoadToken()
	if err != nil {
		m.logger.Warn("reading persisted token", "error", err)
	}
	user, err := m.store.LoadUser()
	if err != nil {
		m.logger.Warn("reading persisted user", "error", err)
	}

	if token != "" && user != nil && m.tokenValid(token) {
		m.current = user
		return
	}
	if err := m.store.Clear(); err != nil {
		m.logger.Warn("clearing stale session", "error", err)
	}
}

// Login authenticates, persists the session, and publishes the new
// user on the session stream.
func (m *Manager) Login(ctx context.Context, email, password string) (*api.User, error) {
	response, err := m.auth.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return m.establishSession(response)
}

// Register creates an account, persists the resulting session, and
// publishes the new user on the session stream.
func (m *Manager) Register(ctx context.Context, email, password string) (*api.User, error) {
	response, err := m.auth.Register(ctx, api.RegisterRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return m.establishSession(response)
}

// establishSession decodes the issued token, synthesizes the user
// record, and persists both. The server returns no user ID at login
// time, so ID stays empty until a follow-up identity fetch — which
// this client never performs.
func (m *Manager) establishSession(response *api.AuthResponse) (*api.User, error) {
	claims, err := decodeToken(response.Token)
	if err != nil {
		return nil, err
	}

	user := &api.User{
		ID:          "",
		Email:       claims.Email,
		Role:        claims.Role,
		IsRemovable: true,
		CreatedAt:   m.clock.Now().UTC().Format(time.RFC3339),
	}

	if err := m.store.SaveToken(response.Token); err != nil {
		return nil, err
	}
	if err := m.store.SaveUser(user); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.current = user
	m.mu.Unlock()
	m.publish(user)

	m.logger.Info("session established", "email", user.Email, "role", user.Role)
	return user, nil
}

// Logout clears persisted state and publishes nil on the session
// stream exactly once. The caller is responsible for navigating back
// to the login screen.
func (m *Manager) Logout() error {
	err := m.store.Clear()

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	m.publish(nil)

	m.logger.Info("session cleared")
	return err
}

// CurrentUser returns the cached user, or nil when anonymous.
func (m *Manager) CurrentUser() *api.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// IsAuthenticated fails closed: false if there is no token, if the
// token does not decode, or if its expiry is at or before the current
// time. No clock-skew margin is applied.
func (m *Manager) IsAuthenticated() bool {
	token, err := m.store.LoadToken()
	if err != nil || token == "" {
		return false
	}
	return m.tokenValid(token)
}

func (m *Manager) tokenValid(token string) bool {
	claims, err := decodeToken(token)
	if err != nil {
		return false
	}
	// A token without an expiry decodes to the zero time, which is in
	// the past: it fails closed.
	return claims.ExpiresAt.After(m.clock.Now())
}

// HasRole reports whether the current user holds exactly this role.
// False when unauthenticated.
func (m *Manager) HasRole(role api.Role) bool {
	user := m.CurrentUser()
	return user != nil && user.Role == role
}

// HasAnyRole reports whether the current user's role is a member of
// roles. False when unauthenticated or when roles is empty.
func (m *Manager) HasAnyRole(roles []api.Role) bool {
	user := m.CurrentUser()
	if user == nil {
		return false
	}
	for _, role := range roles {
		if user.Role == role {
			return true
		}
	}
	return false
}

// Subscribe returns a channel receiving the current user on every
// session change: the user on login and registration, nil on logout.
// The channel is buffered; a subscriber that falls far behind misses
// intermediate updates and should re-read CurrentUser.
func (m *Manager) Subscribe() <-chan *api.User {
	ch := make(chan *api.User, 8)
	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()
	return ch
}

func (m *Manager) publish(user *api.User) {
	m.mu.Lock()
	subscribers := make([]chan *api.User, len(m.subscribers))
	copy(subscribers, m.subscribers)
	m.mu.Unlock()

	for _, ch := range subscribers {
		select {
		case ch <- user:
		default:
		}
	}
}
