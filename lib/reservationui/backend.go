// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package reservationui

import (
	"context"

	"github.com/jniedzwiecki/reservations-ui/lib/api"
	"github.com/jniedzwiecki/reservations-ui/lib/session"
)

// Backend is the slice of the platform the TUI drives. The production
// implementation wraps the session manager and the API services; tests
// substitute a stub.
type Backend interface {
	Login(ctx context.Context, email, password string) (*api.User, error)
	Register(ctx context.Context, email, password string) (*api.User, error)
	Logout() error
	CurrentUser() *api.User

	ListEvents(ctx context.Context) ([]api.Event, error)
	GetEvent(ctx context.Context, id string) (*api.Event, error)

	MyTickets(ctx context.Context) ([]api.Ticket, error)
	ReserveTicket(ctx context.Context, eventID string) (*api.Ticket, error)
	CancelTicket(ctx context.Context, id string) error

	ProcessPayment(ctx context.Context, request api.PaymentRequest) (*api.Payment, error)
}

// clientBackend is the production Backend over the real services.
type clientBackend struct {
	sessions *session.Manager
	events   *api.EventService
	tickets  *api.TicketService
	payments *api.PaymentService
}

// NewBackend wires the session manager and API services into a Backend.
func NewBackend(
	sessions *session.Manager,
	events *api.EventService,
	tickets *api.TicketService,
	payments *api.PaymentService,
) Backend {
	return &clientBackend{
		sessions: sessions,
		events:   events,
		tickets:  tickets,
		payments: payments,
	}
}

func (b *clientBackend) Login(ctx context.Context, email, password string) (*api.User, error) {
	return b.sessions.Login(ctx, email, password)
}

func (b *clientBackend) Register(ctx context.Context, email, password string) (*api.User, error) {
	return b.sessions.Register(ctx, email, password)
}

func (b *clientBackend) Logout() error { return b.sessions.Logout() }

func (b *clientBackend) CurrentUser() *api.User { return b.sessions.CurrentUser() }

func (b *clientBackend) ListEvents(ctx context.Context) ([]api.Event, error) {
	return b.events.List(ctx)
}

func (b *clientBackend) GetEvent(ctx context.Context, id string) (*api.Event, error) {
	return b.events.Get(ctx, id)
}

func (b *clientBackend) MyTickets(ctx context.Context) ([]api.Ticket, error) {
	return b.tickets.Mine(ctx)
}

func (b *clientBackend) ReserveTicket(ctx context.Context, eventID string) (*api.Ticket, error) {
	return b.tickets.Reserve(ctx, eventID)
}

func (b *clientBackend) CancelTicket(ctx context.Context, id string) error {
	return b.tickets.Cancel(ctx, id)
}

func (b *clientBackend) ProcessPayment(ctx context.Context, request api.PaymentRequest) (*api.Payment, error) {
	return b.payments.Process(ctx, request)
}
