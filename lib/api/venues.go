// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
)

// VenueService wraps the /venues endpoints, including the assignment
// records that link power users to venues.
type VenueService struct {
	client *Client
}

// NewVenueService creates a VenueService over client.
func NewVenueService(client *Client) *VenueService {
	return &VenueService{client: client}
}

// List returns all venues.
func (s *VenueService) List(ctx context.Context) ([]Venue, error) {
	var venues []Venue
	if err := s.client.getJSON(ctx, "/venues", &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

// Get returns a single venue by ID.
func (s *VenueService) Get(ctx context.Context, id string) (*Venue, error) {
	var venue Venue
	if err := s.client.getJSON(ctx, "/venues/"+url.PathEscape(id), &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

// Create creates a venue.
func (s *VenueService) Create(ctx context.Context, request CreateVenueRequest) (*Venue, error) {
	var venue Venue
	if err := s.client.sendJSON(ctx, http.MethodPost, "/venues", request, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

// Update modifies a venue's mutable fields.
func (s *VenueService) Update(ctx context.Context, id string, request UpdateVenueRequest) (*Venue, error) {
	var venue Venue
	if err := s.client.sendJSON(ctx, http.MethodPut, "/venues/"+url.PathEscape(id), request, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

// Delete removes a venue.
func (s *VenueService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/venues/"+url.PathEscape(id))
}

// Assign links a power user to a venue.
func (s *VenueService) Assign(ctx context.Context, userID, venueID string) error {
	request := AssignVenueRequest{UserID: userID, VenueID: venueID}
	return s.client.sendJSON(ctx, http.MethodPost, "/venues/assignments", request, nil)
}

// Unassign removes the link between a power user and a venue. The
// assignment endpoint takes the record in the DELETE body.
func (s *VenueService) Unassign(ctx context.Context, userID, venueID string) error {
	request := AssignVenueRequest{UserID: userID, VenueID: venueID}
	return s.client.sendJSON(ctx, http.MethodDelete, "/venues/assignments", request, nil)
}

// AssignAll links one power user to several venues as a fixed set of
// concurrent requests joined into a single completion. Any failure
// fails the whole batch; the server treats re-assignment of an
// existing link as a no-op, so a retried batch converges.
func (s *VenueService) AssignAll(ctx context.Context, userID string, venueIDs []string) error {
	return s.forEachVenue(ctx, userID, venueIDs, s.Assign)
}

// UnassignAll removes one power user's link to several venues, with
// the same batch semantics as AssignAll.
func (s *VenueService) UnassignAll(ctx context.Context, userID string, venueIDs []string) error {
	return s.forEachVenue(ctx, userID, venueIDs, s.Unassign)
}

func (s *VenueService) forEachVenue(ctx context.Context, userID string, venueIDs []string, op func(context.Context, string, string) error) error {
	if len(venueIDs) == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make([]error, len(venueIDs))
	var wg sync.WaitGroup
	for i, venueID := range venueIDs {
		wg.Add(1)
		go func(i int, venueID string) {
			defer wg.Done()
			if err := op(ctx, userID, venueID); err != nil {
				errs[i] = err
				cancel()
			}
		}(i, venueID)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("updating venue assignments: %w", err)
		}
	}
	return nil
}
