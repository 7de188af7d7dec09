// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Fixed messages for the three failure classes that have a uniform
// presentation regardless of what the server said.
const (
	// MessageSessionExpired is shown for a 401 from any non-auth
	// endpoint. The session is no longer usable and the user must log
	// in again.
	MessageSessionExpired = "Session expired. Please login again."

	// MessageInvalidCredentials is shown for a 401 from /auth/login or
	// /auth/register, where the status means bad credentials rather
	// than a dead session.
	MessageInvalidCredentials = "Invalid credentials. Please try again."

	// MessageForbidden is shown for any 403.
	MessageForbidden = "You do not have permission to perform this action."
)

// Error is the normalized failure value for every request issued
// through this package. It carries only the computed human-readable
// message plus enough metadata for callers to branch on session
// expiry; raw transport detail never escapes the client boundary.
type Error struct {
	// Message is the human-readable text displayed inline by screens.
	Message string

	// StatusCode is the HTTP status, or 0 for transport-level failures
	// where no response was received.
	StatusCode int

	// SessionExpired is true for a 401 on a non-auth endpoint. The
	// caller must clear the session and navigate to login.
	SessionExpired bool
}

func (e *Error) Error() string { return e.Message }

// IsSessionExpired reports whether err (anywhere in its chain) is a
// normalized session-expiry error.
func IsSessionExpired(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.SessionExpired
}

// serverMessage is the JSON error shape the platform returns for
// validation and business failures.
type serverMessage struct {
	Message string `json:"message"`
}

// transportError normalizes a failure where no HTTP response was
// received (connection refused, DNS, context cancellation).
func transportError(err error) *Error {
	return &Error{Message: err.Error()}
}

// normalizeError maps an HTTP error response to a normalized *Error.
// Policy, in order:
//
//   - 401 on a non-auth path is session expiry; on an auth path it is
//     ordinary invalid-credentials feedback.
//   - 403 is a fixed insufficient-permission message.
//   - Any response carrying a server message field surfaces that
//     message verbatim.
//   - Otherwise a generic status-code fallback.
func normalizeError(path string, statusCode int, body []byte) *Error {
	switch statusCode {
	case http.StatusUnauthorized:
		if isAuthPath(path) {
			return &Error{Message: MessageInvalidCredentials, StatusCode: statusCode}
		}
		return &Error{
			Message:        MessageSessionExpired,
			StatusCode:     statusCode,
			SessionExpired: true,
		}
	case http.StatusForbidden:
		return &Error{Message: MessageForbidden, StatusCode: statusCode}
	}

	var parsed serverMessage
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return &Error{Message: parsed.Message, StatusCode: statusCode}
	}

	return &Error{
		Message:    fmt.Sprintf("Error Code: %d\nMessage: %s", statusCode, http.StatusText(statusCode)),
		StatusCode: statusCode,
	}
}

// isAuthPath reports whether path belongs to the login/register
// surface, where a 401 means bad credentials rather than a dead
// session.
func isAuthPath(path string) bool {
	return strings.Contains(path, "/auth/")
}
