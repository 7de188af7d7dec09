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

// EventService wraps the /events endpoints. Listing and lookup are
// public; mutation and sales endpoints require admin or power-user
// privileges, enforced server-side.
type EventService struct {
	client *Client
}

// NewEventService creates an EventService over client.
func NewEventService(client *Client) *EventService {
	return &EventService{client: client}
}

// List returns all events visible to the caller.
func (s *EventService) List(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := s.client.getJSON(ctx, "/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Get returns a single event by ID.
func (s *EventService) Get(ctx context.Context, id string) (*Event, error) {
	var event Event
	if err := s.client.getJSON(ctx, "/events/"+url.PathEscape(id), &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create creates an event.
func (s *EventService) Create(ctx context.Context, request CreateEventRequest) (*Event, error) {
	var event Event
	if err := s.client.sendJSON(ctx, http.MethodPost, "/events", request, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Update modifies an event's mutable fields.
func (s *EventService) Update(ctx context.Context, id string, request UpdateEventRequest) (*Event, error) {
	var event Event
	if err := s.client.sendJSON(ctx, http.MethodPut, "/events/"+url.PathEscape(id), request, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/events/"+url.PathEscape(id))
}

// UpdateStatus transitions an event's lifecycle status.
func (s *EventService) UpdateStatus(ctx context.Context, id string, status EventStatus) (*Event, error) {
	var event Event
	request := UpdateEventStatusRequest{Status: status}
	if err := s.client.sendJSON(ctx, http.MethodPatch, "/events/"+url.PathEscape(id)+"/status", request, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Sales returns the server-computed sales aggregate for one event.
func (s *EventService) Sales(ctx context.Context, id string) (*EventSales, error) {
	var sales EventSales
	if err := s.client.getJSON(ctx, "/events/"+url.PathEscape(id)+"/sales", &sales); err != nil {
		return nil, err
	}
	return &sales, nil
}

// AllSales fetches the sales aggregate for every listed event as a
// fixed set of concurrent requests joined into a single completion.
// Results are ordered to match events. Partial failure is not
// attributed to the failing sub-request: any error fails the whole
// batch.
func (s *EventService) AllSales(ctx context.Context, events []Event) ([]EventSales, error) {
	if len(events) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sales := make([]EventSales, len(events))
	errs := make([]error, len(events))

	var wg sync.WaitGroup
	for i, event := range events {
		wg.Add(1)
		go func(i int, eventID string) {
			defer wg.Done()
			result, err := s.Sales(ctx, eventID)
			if err != nil {
				errs[i] = err
				cancel()
				return
			}
			sales[i] = *result
		}(i, event.ID)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("loading event sales: %w", err)
		}
	}
	return sales, nil
}
