// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

// Package guard gates navigation on session state. Each guard is a
// pure predicate over the session: it yields a Decision saying whether
// the target view may open and, when it may not, where to send the
// user instead. Guards never perform the navigation themselves.
package guard

import (
	"github.com/jniedzwiecki/reservations-ui/lib/api"
)

// Well-known redirect targets.
const (
	LoginRoute = "/login"
	HomeRoute  = "/"
)

// Session is the slice of session state guards consult.
// *session.Manager satisfies it.
type Session interface {
	IsAuthenticated() bool
	HasAnyRole(roles []api.Role) bool
}

// Decision is the outcome of evaluating a guard.
type Decision struct {
	Allowed bool
	// Redirect is the route to send the user to when not allowed.
	// Empty when Allowed.
	Redirect string
}

// Allow is the decision that lets navigation proceed.
var Allow = Decision{Allowed: true}

// Guard evaluates one navigation attempt against the session.
type Guard interface {
	Check(session Session) Decision
}

// GuardFunc adapts a function to the Guard interface.
type GuardFunc func(session Session) Decision

func (f GuardFunc) Check(session Session) Decision { return f(session) }

// Auth admits only authenticated sessions. Anonymous users are sent to
// the login view.
func Auth() Guard {
	return GuardFunc(func(session Session) Decision {
		if session.IsAuthenticated() {
			return Allow
		}
		return Decision{Redirect: LoginRoute}
	})
}

// Roles admits sessions whose role is one of roles. An empty role list
// admits unconditionally, before any session inspection; callers that
// also want authentication compose All(Auth(), Roles()). Anonymous
// users go to login; authenticated users holding none of the roles go
// back to the home view, not login, since re-authenticating would not
// change the outcome.
func Roles(roles ...api.Role) Guard {
	return GuardFunc(func(session Session) Decision {
		if len(roles) == 0 {
			return Allow
		}
		if !session.IsAuthenticated() {
			return Decision{Redirect: LoginRoute}
		}
		if session.HasAnyRole(roles) {
			return Allow
		}
		return Decision{Redirect: HomeRoute}
	})
}

// All runs guards in order and returns the first refusal, or Allow
// when every guard admits.
func All(guards ...Guard) Guard {
	return GuardFunc(func(session Session) Decision {
		for _, g := range guards {
			if decision := g.Check(session); !decision.Allowed {
				return decision
			}
		}
		return Allow
	})
}
