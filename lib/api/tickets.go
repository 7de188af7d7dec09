// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/url"
)

// TicketService wraps the /tickets endpoints. All of them require an
// authenticated caller; the server scopes results to the token's user.
type TicketService struct {
	client *Client
}

// NewTicketService creates a TicketService over client.
func NewTicketService(client *Client) *TicketService {
	return &TicketService{client: client}
}

// Reserve holds a ticket against the event's capacity. The returned
// ticket is in reserved state with a payment expiry deadline.
func (s *TicketService) Reserve(ctx context.Context, eventID string) (*Ticket, error) {
	var ticket Ticket
	request := ReserveTicketRequest{EventID: eventID}
	if err := s.client.sendJSON(ctx, http.MethodPost, "/tickets/reserve", request, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Mine returns the calling user's tickets.
func (s *TicketService) Mine(ctx context.Context) ([]Ticket, error) {
	var tickets []Ticket
	if err := s.client.getJSON(ctx, "/tickets/my-tickets", &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// Get returns a single ticket by ID.
func (s *TicketService) Get(ctx context.Context, id string) (*Ticket, error) {
	var ticket Ticket
	if err := s.client.getJSON(ctx, "/tickets/"+url.PathEscape(id), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Cancel releases a reserved ticket back to the event's capacity.
func (s *TicketService) Cancel(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/tickets/"+url.PathEscape(id))
}
