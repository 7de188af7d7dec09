// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jniedzwiecki/reservations-ui/cmd/reservations/cli"
	"github.com/jniedzwiecki/reservations-ui/lib/api"
	"github.com/jniedzwiecki/reservations-ui/lib/clock"
	"github.com/jniedzwiecki/reservations-ui/lib/guard"
	"github.com/jniedzwiecki/reservations-ui/lib/session"
)

// TestCommandTreeIntegrity walks the full command tree and checks the
// structural properties help and dispatch rely on. Calling Flags()
// exercises the struct-tag binder, which panics on malformed tags.
func TestCommandTreeIntegrity(t *testing.T) {
	var walk func(t *testing.T, path string, c *cli.Command)
	walk = func(t *testing.T, path string, c *cli.Command) {
		if c.Name == "" {
			t.Errorf("command under %q has no name", path)
			return
		}
		full := strings.TrimSpace(path + " " + c.Name)
		if path != "" && c.Summary == "" {
			t.Errorf("%s: missing summary", full)
		}
		if c.Run == nil && len(c.Subcommands) == 0 {
			t.Errorf("%s: neither Run nor subcommands", full)
		}
		if c.Flags != nil {
			if fs := c.Flags(); fs == nil {
				t.Errorf("%s: Flags() returned nil", full)
			}
		}
		seen := make(map[string]bool)
		for _, sub := range c.Subcommands {
			if seen[sub.Name] {
				t.Errorf("%s: duplicate subcommand %q", full, sub.Name)
			}
			seen[sub.Name] = true
			walk(t, full, sub)
		}
	}
	walk(t, "", Root())
}

type staticAuth struct {
	response *api.AuthResponse
}

func (a *staticAuth) Login(ctx context.Context, request api.LoginRequest) (*api.AuthResponse, error) {
	return a.response, nil
}

func (a *staticAuth) Register(ctx context.Context, request api.RegisterRequest) (*api.AuthResponse, error) {
	return a.response, nil
}

func signedToken(t *testing.T, email string, role api.Role, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": string(role),
		"exp":  expiresAt.Unix(),
		"iat":  expiresAt.Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func loggedInContext(t *testing.T, role api.Role) *appContext {
	t.Helper()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	auth := &staticAuth{response: &api.AuthResponse{
		Token: signedToken(t, "user@example.com", role, now.Add(time.Hour)),
		Email: "user@example.com",
		Role:  role,
	}}
	sessions := session.NewManager(session.ManagerConfig{
		Store: session.NewStore(t.TempDir()),
		Auth:  auth,
		Clock: clock.Fake(now),
	})
	if _, err := sessions.Login(context.Background(), "user@example.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return &appContext{sessions: sessions}
}

func TestRequireGuardAnonymous(t *testing.T) {
	app := &appContext{sessions: session.NewManager(session.ManagerConfig{
		Store: session.NewStore(t.TempDir()),
	})}
	err := app.requireGuard(guard.Auth())
	if err == nil {
		t.Fatal("expected an error for an anonymous session")
	}
	if !strings.Contains(err.Error(), "reservations login") {
		t.Errorf("error should point at the login command, got %q", err)
	}
}

func TestRequireGuardAuthenticated(t *testing.T) {
	app := loggedInContext(t, api.RoleCustomer)
	if err := app.requireGuard(guard.Auth()); err != nil {
		t.Fatalf("authenticated session refused: %v", err)
	}
}

func TestRequireGuardInsufficientRole(t *testing.T) {
	app := loggedInContext(t, api.RoleCustomer)
	err := app.requireGuard(guard.Roles(api.RoleAdmin))
	if err == nil {
		t.Fatal("expected a refusal for a customer against an admin guard")
	}
	if err.Error() != api.MessageForbidden {
		t.Errorf("error = %q, want the fixed permission message", err)
	}
	// Re-authenticating would not help, so the login hint must not appear.
	if strings.Contains(err.Error(), "login") {
		t.Errorf("role refusal should not suggest logging in: %q", err)
	}
}

func TestRequireGuardRoleSatisfied(t *testing.T) {
	app := loggedInContext(t, api.RoleAdmin)
	if err := app.requireGuard(guard.Roles(api.RolePowerUser, api.RoleAdmin)); err != nil {
		t.Fatalf("admin refused by admin/power guard: %v", err)
	}
}
