// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package reservationui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jniedzwiecki/reservations-ui/lib/api"
	"github.com/jniedzwiecki/reservations-ui/lib/clock"
)

var testNow = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// stubBackend answers from canned data and records calls.
type stubBackend struct {
	user    *api.User
	events  []api.Event
	tickets []api.Ticket

	loginErr   error
	listErr    error
	reserveErr error
	payErr     error

	logoutCalls int
	payRequests []api.PaymentRequest
}

func (s *stubBackend) Login(_ context.Context, email, _ string) (*api.User, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	s.user = &api.User{Email: email, Role: api.RoleCustomer}
	return s.user, nil
}

func (s *stubBackend) Register(ctx context.Context, email, password string) (*api.User, error) {
	return s.Login(ctx, email, password)
}

func (s *stubBackend) Logout() error {
	s.logoutCalls++
	s.user = nil
	return nil
}

func (s *stubBackend) CurrentUser() *api.User { return s.user }

func (s *stubBackend) ListEvents(context.Context) ([]api.Event, error) {
	return s.events, s.listErr
}

func (s *stubBackend) GetEvent(_ context.Context, id string) (*api.Event, error) {
	for _, event := range s.events {
		if event.ID == id {
			return &event, nil
		}
	}
	return nil, &api.Error{Message: "Event not found", StatusCode: 404}
}

func (s *stubBackend) MyTickets(context.Context) ([]api.Ticket, error) {
	return s.tickets, nil
}

func (s *stubBackend) ReserveTicket(_ context.Context, eventID string) (*api.Ticket, error) {
	if s.reserveErr != nil {
		return nil, s.reserveErr
	}
	return &api.Ticket{
		ID:               "t1",
		TicketNumber:     "TKT-001",
		EventID:          eventID,
		Status:           api.TicketReserved,
		PaymentExpiresAt: "2025-01-01T00:00:30",
	}, nil
}

func (s *stubBackend) CancelTicket(context.Context, string) error { return nil }

func (s *stubBackend) ProcessPayment(_ context.Context, request api.PaymentRequest) (*api.Payment, error) {
	s.payRequests = append(s.payRequests, request)
	if s.payErr != nil {
		return nil, s.payErr
	}
	return &api.Payment{ID: "p1", TicketID: request.TicketID, Status: api.PaymentCompleted}, nil
}

func newTestModel(backend *stubBackend) Model {
	return New(Config{Backend: backend, Clock: clock.Fake(testNow)})
}

// apply runs one message through Update and returns the new model.
func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model, cmd
}

func TestStartsAtLoginWhenAnonymous(t *testing.T) {
	m := newTestModel(&stubBackend{})
	if m.view != ViewLogin {
		t.Fatalf("view = %v, want ViewLogin", m.view)
	}
}

func TestStartsAtEventsWithExistingSession(t *testing.T) {
	backend := &stubBackend{user: &api.User{Email: "jan@example.com"}}
	m := newTestModel(backend)
	if m.view != ViewEvents {
		t.Fatalf("view = %v, want ViewEvents", m.view)
	}
	if m.Init() == nil {
		t.Fatal("Init issued no load command for an existing session")
	}
}

func TestLoginSuccessSwitchesToEvents(t *testing.T) {
	m := newTestModel(&stubBackend{})
	m, cmd := apply(t, m, loginResultMsg{user: &api.User{Email: "jan@example.com"}})
	if m.view != ViewEvents {
		t.Fatalf("view = %v, want ViewEvents", m.view)
	}
	if cmd == nil {
		t.Fatal("no follow-up command after login")
	}
}

func TestLoginFailureStaysOnLogin(t *testing.T) {
	m := newTestModel(&stubBackend{})
	m, _ = apply(t, m, loginResultMsg{err: &api.Error{
		Message:    api.MessageInvalidCredentials,
		StatusCode: 401,
	}})
	if m.view != ViewLogin {
		t.Fatalf("view = %v, want ViewLogin", m.view)
	}
	if m.notice != api.MessageInvalidCredentials {
		t.Fatalf("notice = %q", m.notice)
	}
}

func TestSessionExpiryForcesLogout(t *testing.T) {
	backend := &stubBackend{user: &api.User{Email: "jan@example.com"}}
	m := newTestModel(backend)

	m, _ = apply(t, m, eventsLoadedMsg{err: &api.Error{
		Message:        api.MessageSessionExpired,
		StatusCode:     401,
		SessionExpired: true,
	}})

	if m.view != ViewLogin {
		t.Fatalf("view = %v, want ViewLogin after expiry", m.view)
	}
	if backend.logoutCalls != 1 {
		t.Fatalf("logout calls = %d, want 1", backend.logoutCalls)
	}
	if m.notice != api.MessageSessionExpired {
		t.Fatalf("notice = %q", m.notice)
	}
}

func TestReserveOpensPaymentWithCountdown(t *testing.T) {
	backend := &stubBackend{user: &api.User{Email: "jan@example.com"}}
	m := newTestModel(backend)

	ticket := &api.Ticket{
		ID:               "t1",
		TicketNumber:     "TKT-001",
		Status:           api.TicketReserved,
		PaymentExpiresAt: "2025-01-01T00:00:30",
	}
	m, cmd := apply(t, m, reserveResultMsg{ticket: ticket})

	if m.view != ViewPayment {
		t.Fatalf("view = %v, want ViewPayment", m.view)
	}
	if cmd == nil {
		t.Fatal("no countdown tick scheduled")
	}
	// The timezone-less deadline reads as UTC: 30 seconds from now.
	want := "00:30"
	if got := m.payRemaining.String(); got != want {
		t.Fatalf("remaining = %q, want %q", got, want)
	}
}

func TestCountdownExpiryAbandonsPayment(t *testing.T) {
	backend := &stubBackend{user: &api.User{Email: "jan@example.com"}}
	fake := clock.Fake(testNow)
	m := New(Config{Backend: backend, Clock: fake})

	ticket := &api.Ticket{ID: "t1", PaymentExpiresAt: "2025-01-01T00:00:30"}
	m, _ = apply(t, m, reserveResultMsg{ticket: ticket})

	fake.Advance(31 * time.Second)
	m, _ = apply(t, m, countdownTickMsg{generation: m.countdownGeneration})

	if m.view != ViewMyTickets {
		t.Fatalf("view = %v, want ViewMyTickets after expiry", m.view)
	}
	if m.payTicket != nil {
		t.Fatal("payment ticket not cleared after expiry")
	}
	if !strings.Contains(m.notice, "expired") {
		t.Fatalf("notice = %q", m.notice)
	}
}

func TestStaleCountdownTickIgnored(t *testing.T) {
	backend := &stubBackend{user: &api.User{Email: "jan@example.com"}}
	fake := clock.Fake(testNow)
	m := New(Config{Backend: backend, Clock: fake})

	ticket := &api.Ticket{ID: "t1", PaymentExpiresAt: "2025-01-01T00:00:30"}
	m, _ = apply(t, m, reserveResultMsg{ticket: ticket})
	staleGeneration := m.countdownGeneration

	// Abandon the payment; its ticks must become no-ops.
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != ViewMyTickets {
		t.Fatalf("view = %v, want ViewMyTickets", m.view)
	}

	fake.Advance(time.Minute)
	noticeBefore := m.notice
	m, cmd := apply(t, m, countdownTickMsg{generation: staleGeneration})
	if cmd != nil {
		t.Fatal("stale tick rescheduled itself")
	}
	if m.view != ViewMyTickets || m.notice != noticeBefore {
		t.Fatalf("stale tick changed state: view=%v notice=%q", m.view, m.notice)
	}
}

func TestPaymentSuccessReturnsToTickets(t *testing.T) {
	backend := &stubBackend{user: &api.User{Email: "jan@example.com"}}
	m := newTestModel(backend)

	ticket := &api.Ticket{ID: "t1", PaymentExpiresAt: "2025-01-01T00:00:30"}
	m, _ = apply(t, m, reserveResultMsg{ticket: ticket})
	m, _ = apply(t, m, paymentResultMsg{payment: &api.Payment{Status: api.PaymentCompleted}})

	if m.view != ViewMyTickets {
		t.Fatalf("view = %v, want ViewMyTickets", m.view)
	}
	if m.notice != "Payment completed" {
		t.Fatalf("notice = %q", m.notice)
	}
}

func TestPaymentSubmitCarriesIdempotencyKey(t *testing.T) {
	backend := &stubBackend{user: &api.User{Email: "jan@example.com"}}
	m := newTestModel(backend)

	ticket := &api.Ticket{ID: "t1", PaymentExpiresAt: "2025-01-01T00:00:30"}
	m, _ = apply(t, m, reserveResultMsg{ticket: ticket})

	m.payCard.SetValue("4111111111111111")
	_, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter did not submit the payment")
	}
	if msg := cmd(); msg == nil {
		t.Fatal("payment command produced no message")
	}

	if len(backend.payRequests) != 1 {
		t.Fatalf("payment requests = %d, want 1", len(backend.payRequests))
	}
	request := backend.payRequests[0]
	if request.TicketID != "t1" || request.CardNumber != "4111111111111111" {
		t.Fatalf("request = %+v", request)
	}
	if request.IdempotencyKey == "" {
		t.Fatal("payment request missing idempotency key")
	}
}

func TestEventFilterMatchesNameAndDescription(t *testing.T) {
	backend := &stubBackend{user: &api.User{Email: "jan@example.com"}}
	m := newTestModel(backend)
	m.events = []api.Event{
		{ID: "e1", Name: "Jazz Night", Description: "smooth evening"},
		{ID: "e2", Name: "Rock Fest", Description: "loud"},
		{ID: "e3", Name: "Quiet Hours", Description: "jazz adjacent"},
	}

	m.filter.SetValue("jazz")
	visible := m.filteredEvents()
	if len(visible) != 2 {
		t.Fatalf("filtered %d events, want 2: %+v", len(visible), visible)
	}
	if visible[0].ID != "e1" || visible[1].ID != "e3" {
		t.Fatalf("filtered = %+v", visible)
	}

	m.filter.SetValue("")
	if len(m.filteredEvents()) != 3 {
		t.Fatal("empty filter must show every event")
	}
}

func TestNonAPIErrorShowsNotice(t *testing.T) {
	backend := &stubBackend{user: &api.User{Email: "jan@example.com"}}
	m := newTestModel(backend)

	m, _ = apply(t, m, eventsLoadedMsg{err: errors.New("connection refused")})
	if m.view != ViewEvents {
		t.Fatalf("view = %v, want ViewEvents (no forced logout)", m.view)
	}
	if backend.logoutCalls != 0 {
		t.Fatal("plain error must not log out")
	}
	if m.notice != "connection refused" {
		t.Fatalf("notice = %q", m.notice)
	}
}

func TestNoticeFadeIgnoresStaleGeneration(t *testing.T) {
	m := newTestModel(&stubBackend{})
	_ = m.setNotice("first", false)
	stale := m.noticeGeneration
	_ = m.setNotice("second", false)

	m, _ = apply(t, m, noticeFadeMsg{generation: stale})
	if m.notice != "second" {
		t.Fatalf("notice = %q, want %q", m.notice, "second")
	}
	m, _ = apply(t, m, noticeFadeMsg{generation: m.noticeGeneration})
	if m.notice != "" {
		t.Fatalf("notice = %q, want cleared", m.notice)
	}
}
