// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package guard

import (
	"testing"

	"github.com/jniedzwiecki/reservations-ui/lib/api"
)

// stubSession answers guard queries from fixed fields.
type stubSession struct {
	authenticated bool
	role          api.Role
}

func (s stubSession) IsAuthenticated() bool { return s.authenticated }

func (s stubSession) HasAnyRole(roles []api.Role) bool {
	if !s.authenticated {
		return false
	}
	for _, role := range roles {
		if role == s.role {
			return true
		}
	}
	return false
}

func TestAuthGuard(t *testing.T) {
	if got := Auth().Check(stubSession{authenticated: true}); !got.Allowed {
		t.Fatalf("authenticated session refused: %+v", got)
	}
	got := Auth().Check(stubSession{})
	if got.Allowed || got.Redirect != LoginRoute {
		t.Fatalf("anonymous session: %+v, want redirect to %s", got, LoginRoute)
	}
}

func TestRolesGuard(t *testing.T) {
	admin := stubSession{authenticated: true, role: api.RoleAdmin}
	customer := stubSession{authenticated: true, role: api.RoleCustomer}
	anonymous := stubSession{}

	tests := []struct {
		name    string
		guard   Guard
		session Session
		want    Decision
	}{
		{"matching role admitted", Roles(api.RoleAdmin), admin, Allow},
		{"one of several matches", Roles(api.RolePowerUser, api.RoleAdmin), admin, Allow},
		{"wrong role goes home, not to login", Roles(api.RoleAdmin), customer, Decision{Redirect: HomeRoute}},
		{"anonymous goes to login", Roles(api.RoleAdmin), anonymous, Decision{Redirect: LoginRoute}},
		{"empty role list admits authenticated", Roles(), customer, Allow},
		{"empty role list admits anonymous too", Roles(), anonymous, Allow},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.guard.Check(test.session); got != test.want {
				t.Fatalf("Check = %+v, want %+v", got, test.want)
			}
		})
	}
}

func TestAllStopsAtFirstRefusal(t *testing.T) {
	customer := stubSession{authenticated: true, role: api.RoleCustomer}
	combined := All(Auth(), Roles(api.RoleAdmin))

	got := combined.Check(customer)
	if got.Allowed || got.Redirect != HomeRoute {
		t.Fatalf("Check = %+v, want redirect to %s", got, HomeRoute)
	}
	if got := combined.Check(stubSession{authenticated: true, role: api.RoleAdmin}); !got.Allowed {
		t.Fatalf("admin refused by combined guard: %+v", got)
	}
}
