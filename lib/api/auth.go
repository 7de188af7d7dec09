// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
)

// AuthService wraps the login and registration endpoints. Both are
// anonymous: the bearer token, if any, is ignored server-side.
type AuthService struct {
	client *Client
}

// NewAuthService creates an AuthService over client.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Login exchanges credentials for a bearer token.
func (s *AuthService) Login(ctx context.Context, request LoginRequest) (*AuthResponse, error) {
	var response AuthResponse
	if err := s.client.sendJSON(ctx, http.MethodPost, "/auth/login", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Register creates an account and returns a bearer token for it.
func (s *AuthService) Register(ctx context.Context, request RegisterRequest) (*AuthResponse, error) {
	var response AuthResponse
	if err := s.client.sendJSON(ctx, http.MethodPost, "/auth/register", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
