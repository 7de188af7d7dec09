// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// PaymentService wraps the payment processor's endpoints. Payments are
// served from a distinct base host/port than the other resources, so
// this service holds its own Client.
type PaymentService struct {
	client *Client
}

// NewPaymentService creates a PaymentService over client, which must
// point at the payments base URL.
func NewPaymentService(client *Client) *PaymentService {
	return &PaymentService{client: client}
}

// NewIdempotencyKey generates the client-side key attached to a
// payment request so repeated submissions are not double-charged.
func NewIdempotencyKey() string {
	return uuid.NewString()
}

// Process submits a payment for a reserved ticket. The request must
// carry an idempotency key from NewIdempotencyKey. A declined payment
// is not an error at this layer: the returned Payment carries status
// FAILED and a failure reason.
func (s *PaymentService) Process(ctx context.Context, request PaymentRequest) (*Payment, error) {
	var payment Payment
	if err := s.client.sendJSON(ctx, http.MethodPost, "/payments", request, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Get returns a payment by its ID.
func (s *PaymentService) Get(ctx context.Context, id string) (*Payment, error) {
	var payment Payment
	if err := s.client.getJSON(ctx, "/payments/"+url.PathEscape(id), &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// ByTicket returns the payment associated with a ticket.
func (s *PaymentService) ByTicket(ctx context.Context, ticketID string) (*Payment, error) {
	var payment Payment
	if err := s.client.getJSON(ctx, "/payments/ticket/"+url.PathEscape(ticketID), &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
