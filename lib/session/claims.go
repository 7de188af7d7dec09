// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jniedzwiecki/reservations-ui/lib/api"
)

// Claims are the token fields the client cares about. The subject is
// the user's email; the platform puts the role in a private claim.
type Claims struct {
	Email     string
	Role      api.Role
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// tokenClaims is the JWT claim shape issued by the platform.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// decodeToken extracts claims without verifying the signature. The
// client has no key material; it trusts the server that issued the
// token and only needs the claims for display and expiry checks.
func decodeToken(token string) (*Claims, error) {
	var claims tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("decoding token: %w", err)
	}

	decoded := &Claims{
		Email: claims.Subject,
		Role:  api.Role(claims.Role),
	}
	if claims.ExpiresAt != nil {
		decoded.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		decoded.IssuedAt = claims.IssuedAt.Time
	}
	return decoded, nil
}
