// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/url"
)

// UserService wraps the /users endpoints. All of them are admin-only,
// enforced server-side; the client additionally gates them through
// lib/guard before issuing a request.
type UserService struct {
	client *Client
}

// NewUserService creates a UserService over client.
func NewUserService(client *Client) *UserService {
	return &UserService{client: client}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]User, error) {
	var users []User
	if err := s.client.getJSON(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Get returns a single user by ID.
func (s *UserService) Get(ctx context.Context, id string) (*User, error) {
	var user User
	if err := s.client.getJSON(ctx, "/users/"+url.PathEscape(id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user. The server rejects deletion of users whose
// IsRemovable flag is false.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/users/"+url.PathEscape(id))
}

// CreatePowerUser creates an account with the power-user role.
func (s *UserService) CreatePowerUser(ctx context.Context, request CreatePowerUserRequest) (*User, error) {
	var user User
	if err := s.client.sendJSON(ctx, http.MethodPost, "/users/power-user", request, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
