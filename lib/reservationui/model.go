// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package reservationui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jniedzwiecki/reservations-ui/lib/api"
	"github.com/jniedzwiecki/reservations-ui/lib/clock"
	"github.com/jniedzwiecki/reservations-ui/lib/countdown"
	"github.com/jniedzwiecki/reservations-ui/lib/tui"
)

// View identifies which screen is active.
type View int

const (
	// ViewLogin is the email/password form, shown when anonymous.
	ViewLogin View = iota
	// ViewEvents is the browsable event list.
	ViewEvents
	// ViewEventDetail shows one event with its rendered description.
	ViewEventDetail
	// ViewMyTickets lists the user's reservations.
	ViewMyTickets
	// ViewPayment is the payment form with the expiry countdown.
	ViewPayment
)

// noticeFadeDelay is how long a status bar notice stays visible.
const noticeFadeDelay = 5 * time.Second

// --- Messages ---

type loginResultMsg struct {
	user *api.User
	err  error
}

type eventsLoadedMsg struct {
	events []api.Event
	err    error
}

type eventLoadedMsg struct {
	event *api.Event
	err   error
}

type ticketsLoadedMsg struct {
	tickets []api.Ticket
	err     error
}

type reserveResultMsg struct {
	ticket *api.Ticket
	err    error
}

type cancelResultMsg struct {
	err error
}

type paymentResultMsg struct {
	payment *api.Payment
	err     error
}

// countdownTickMsg drives the payment countdown. The generation field
// lets stale ticks from an abandoned payment view be discarded: every
// time a payment view opens or closes the generation increments, and
// ticks carrying an old generation are ignored.
type countdownTickMsg struct {
	generation int
}

type noticeFadeMsg struct {
	generation int
}

// Model is the top-level bubbletea model for the reservations TUI.
type Model struct {
	backend Backend
	theme   tui.Theme
	keys    KeyMap
	clock   clock.Clock

	width  int
	height int
	ready  bool

	view View

	// Login form.
	emailInput    textinput.Model
	passwordInput textinput.Model
	passwordFocus bool
	registering   bool

	// Event list.
	events   []api.Event
	cursor   int
	filter   textinput.Model
	filterOn bool

	// Event detail.
	detail *api.Event

	// My tickets.
	tickets      []api.Ticket
	ticketCursor int

	// Payment.
	payTicket           *api.Ticket
	payDeadline         time.Time
	payRemaining        countdown.Remaining
	payCard             textinput.Model
	payMethod           api.PaymentMethod
	countdownGeneration int
	paying              bool

	// Status bar notice.
	notice           string
	noticeIsError    bool
	noticeGeneration int

	loading bool
	spin    spinner.Model
}

// Config holds the dependencies for creating a Model.
type Config struct {
	Backend Backend
	// Theme defaults to tui.DefaultTheme when zero.
	Theme *tui.Theme
	// Keys defaults to DefaultKeyMap when nil.
	Keys *KeyMap
	// Clock defaults to clock.Real().
	Clock clock.Clock
}

// New creates the TUI model. The initial view depends on whether a
// session is already established.
func New(config Config) Model {
	theme := tui.DefaultTheme
	if config.Theme != nil {
		theme = *config.Theme
	}
	keys := DefaultKeyMap
	if config.Keys != nil {
		keys = *config.Keys
	}
	c := config.Clock
	if c == nil {
		c = clock.Real()
	}

	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	filter := textinput.New()
	filter.Placeholder = "filter events"

	card := textinput.New()
	card.Placeholder = "card number"

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.FaintText)),
	)

	m := Model{
		backend:       config.Backend,
		theme:         theme,
		keys:          keys,
		clock:         c,
		emailInput:    email,
		passwordInput: password,
		filter:        filter,
		payCard:       card,
		payMethod:     api.MethodCreditCard,
		spin:          spin,
	}
	if config.Backend.CurrentUser() != nil {
		m.view = ViewEvents
	}
	return m
}

// Init loads the event list when a session already exists.
func (m Model) Init() tea.Cmd {
	if m.view == ViewEvents {
		return m.loadEvents()
	}
	return textinput.Blink
}

// --- Commands ---

func (m Model) loadEvents() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		events, err := backend.ListEvents(context.Background())
		return eventsLoadedMsg{events: events, err: err}
	}
}

func (m Model) loadEvent(id string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		event, err := backend.GetEvent(context.Background(), id)
		return eventLoadedMsg{event: event, err: err}
	}
}

func (m Model) loadTickets() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		tickets, err := backend.MyTickets(context.Background())
		return ticketsLoadedMsg{tickets: tickets, err: err}
	}
}

func (m Model) submitLogin() tea.Cmd {
	backend := m.backend
	email := strings.TrimSpace(m.emailInput.Value())
	password := m.passwordInput.Value()
	register := m.registering
	return func() tea.Msg {
		var user *api.User
		var err error
		if register {
			user, err = backend.Register(context.Background(), email, password)
		} else {
			user, err = backend.Login(context.Background(), email, password)
		}
		return loginResultMsg{user: user, err: err}
	}
}

func (m Model) reserveTicket(eventID string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ticket, err := backend.ReserveTicket(context.Background(), eventID)
		return reserveResultMsg{ticket: ticket, err: err}
	}
}

func (m Model) cancelTicket(id string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		return cancelResultMsg{err: backend.CancelTicket(context.Background(), id)}
	}
}

func (m Model) submitPayment() tea.Cmd {
	backend := m.backend
	request := api.PaymentRequest{
		TicketID:       m.payTicket.ID,
		PaymentMethod:  m.payMethod,
		CardNumber:     strings.TrimSpace(m.payCard.Value()),
		IdempotencyKey: api.NewIdempotencyKey(),
	}
	return func() tea.Msg {
		payment, err := backend.ProcessPayment(context.Background(), request)
		return paymentResultMsg{payment: payment, err: err}
	}
}

func (m Model) scheduleCountdownTick() tea.Cmd {
	generation := m.countdownGeneration
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{generation: generation}
	})
}

func (m Model) scheduleNoticeFade() tea.Cmd {
	generation := m.noticeGeneration
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{generation: generation}
	})
}

// --- Notices ---

func (m *Model) setNotice(text string, isError bool) tea.Cmd {
	m.notice = text
	m.noticeIsError = isError
	m.noticeGeneration++
	return m.scheduleNoticeFade()
}

// handleError routes an API error to the status bar. A session-expiry
// error additionally tears down the session and returns to the login
// view, matching the forced-logout the server's 401 demands.
func (m *Model) handleError(err error) tea.Cmd {
	if api.IsSessionExpired(err) {
		m.backend.Logout()
		m.resetToLogin()
	}
	return m.setNotice(err.Error(), true)
}

func (m *Model) resetToLogin() {
	m.view = ViewLogin
	m.countdownGeneration++
	m.payTicket = nil
	m.events = nil
	m.tickets = nil
	m.detail = nil
	m.cursor = 0
	m.ticketCursor = 0
	m.emailInput.SetValue("")
	m.passwordInput.SetValue("")
	m.passwordFocus = false
	m.emailInput.Focus()
	m.passwordInput.Blur()
}

// enterPayment opens the payment view for a reserved ticket.
func (m *Model) enterPayment(ticket *api.Ticket) tea.Cmd {
	m.payTicket = ticket
	m.view = ViewPayment
	m.paying = false
	m.payCard.SetValue("")
	m.payCard.Focus()
	m.countdownGeneration++

	deadline, err := countdown.Parse(ticket.PaymentExpiresAt)
	if err != nil {
		m.payDeadline = time.Time{}
		m.payRemaining = countdown.Remaining{Expired: true}
		return nil
	}
	m.payDeadline = deadline
	m.payRemaining = countdown.Until(deadline, m.clock.Now())
	return m.scheduleCountdownTick()
}

// leavePayment abandons the payment view. Bumping the generation makes
// any in-flight tick a no-op.
func (m *Model) leavePayment() {
	m.countdownGeneration++
	m.payTicket = nil
	m.payCard.Blur()
	m.view = ViewMyTickets
}

// filteredEvents applies the filter input to the event list,
// case-insensitive over name and description.
func (m Model) filteredEvents() []api.Event {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		return m.events
	}
	var matched []api.Event
	for _, event := range m.events {
		if strings.Contains(strings.ToLower(event.Name), query) ||
			strings.Contains(strings.ToLower(event.Description), query) {
			matched = append(matched, event)
		}
	}
	return matched
}

func (m *Model) clampCursor() {
	visible := len(m.filteredEvents())
	if m.cursor >= visible {
		m.cursor = visible - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update is the bubbletea message dispatcher.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case loginResultMsg:
		if msg.err != nil {
			return m, m.setNotice(msg.err.Error(), true)
		}
		m.view = ViewEvents
		m.passwordInput.SetValue("")
		cmd := m.setNotice("Logged in as "+msg.user.Email, false)
		return m, tea.Batch(cmd, m.loadEvents())

	case eventsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.events = msg.events
		m.clampCursor()
		return m, nil

	case eventLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.detail = msg.event
		m.view = ViewEventDetail
		return m, nil

	case ticketsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.tickets = msg.tickets
		if m.ticketCursor >= len(m.tickets) {
			m.ticketCursor = len(m.tickets) - 1
		}
		if m.ticketCursor < 0 {
			m.ticketCursor = 0
		}
		return m, nil

	case reserveResultMsg:
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		cmd := m.enterPayment(msg.ticket)
		notice := m.setNotice("Reserved ticket "+msg.ticket.TicketNumber, false)
		return m, tea.Batch(cmd, notice)

	case cancelResultMsg:
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		cmd := m.setNotice("Ticket cancelled", false)
		return m, tea.Batch(cmd, m.loadTickets())

	case paymentResultMsg:
		m.paying = false
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.leavePayment()
		cmd := m.setNotice("Payment completed", false)
		return m, tea.Batch(cmd, m.loadTickets())

	case countdownTickMsg:
		if msg.generation != m.countdownGeneration || m.payTicket == nil {
			return m, nil
		}
		m.payRemaining = countdown.Until(m.payDeadline, m.clock.Now())
		if m.payRemaining.Expired {
			m.leavePayment()
			cmd := m.setNotice("Payment window expired; the reservation was released", true)
			return m, tea.Batch(cmd, m.loadTickets())
		}
		return m, m.scheduleCountdownTick()

	case noticeFadeMsg:
		if msg.generation == m.noticeGeneration {
			m.notice = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit works everywhere except while typing in a text input.
	typing := m.view == ViewLogin || m.filterOn || (m.view == ViewPayment && m.payCard.Focused())
	if key.Matches(msg, m.keys.Quit) && !typing {
		return m, tea.Quit
	}

	switch m.view {
	case ViewLogin:
		return m.handleLoginKey(msg)
	case ViewEvents:
		return m.handleEventsKey(msg)
	case ViewEventDetail:
		return m.handleDetailKey(msg)
	case ViewMyTickets:
		return m.handleTicketsKey(msg)
	case ViewPayment:
		return m.handlePaymentKey(msg)
	}
	return m, nil
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyShiftTab:
		m.passwordFocus = !m.passwordFocus
		if m.passwordFocus {
			m.emailInput.Blur()
			return m, m.passwordInput.Focus()
		}
		m.passwordInput.Blur()
		return m, m.emailInput.Focus()
	case tea.KeyCtrlN:
		// Toggle between login and registration.
		m.registering = !m.registering
		return m, nil
	case tea.KeyEnter:
		if strings.TrimSpace(m.emailInput.Value()) == "" || m.passwordInput.Value() == "" {
			return m, m.setNotice("Email and password are required", true)
		}
		return m, m.submitLogin()
	}

	var cmd tea.Cmd
	if m.passwordFocus {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	} else {
		m.emailInput, cmd = m.emailInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleEventsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterOn {
		switch msg.Type {
		case tea.KeyEnter:
			m.filterOn = false
			m.filter.Blur()
			return m, nil
		case tea.KeyEsc:
			m.filterOn = false
			m.filter.SetValue("")
			m.filter.Blur()
			m.clampCursor()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.clampCursor()
		return m, cmd
	}

	visible := m.filteredEvents()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		m.cursor = len(visible) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(visible) {
			m.loading = true
			return m, tea.Batch(m.loadEvent(visible[m.cursor].ID), m.spin.Tick)
		}
	case key.Matches(msg, m.keys.Reserve):
		if m.cursor < len(visible) {
			return m, m.reserveTicket(visible[m.cursor].ID)
		}
	case key.Matches(msg, m.keys.FilterActivate):
		m.filterOn = true
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.TabTickets):
		m.view = ViewMyTickets
		m.loading = true
		return m, tea.Batch(m.loadTickets(), m.spin.Tick)
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, tea.Batch(m.loadEvents(), m.spin.Tick)
	case key.Matches(msg, m.keys.Logout):
		m.backend.Logout()
		m.resetToLogin()
		return m, m.setNotice("Logged out", false)
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.detail = nil
		m.view = ViewEvents
	case key.Matches(msg, m.keys.Reserve):
		if m.detail != nil {
			return m, m.reserveTicket(m.detail.ID)
		}
	case key.Matches(msg, m.keys.TabEvents):
		m.detail = nil
		m.view = ViewEvents
	case key.Matches(msg, m.keys.TabTickets):
		m.detail = nil
		m.view = ViewMyTickets
		m.loading = true
		return m, tea.Batch(m.loadTickets(), m.spin.Tick)
	}
	return m, nil
}

func (m Model) handleTicketsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.ticketCursor > 0 {
			m.ticketCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.ticketCursor < len(m.tickets)-1 {
			m.ticketCursor++
		}
	case key.Matches(msg, m.keys.Cancel):
		if m.ticketCursor < len(m.tickets) {
			return m, m.cancelTicket(m.tickets[m.ticketCursor].ID)
		}
	case key.Matches(msg, m.keys.Pay):
		if m.ticketCursor < len(m.tickets) {
			ticket := m.tickets[m.ticketCursor]
			if ticket.Status == api.TicketReserved {
				return m, m.enterPayment(&ticket)
			}
			return m, m.setNotice("Only reserved tickets can be paid", true)
		}
	case key.Matches(msg, m.keys.TabEvents), key.Matches(msg, m.keys.Back):
		m.view = ViewEvents
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, tea.Batch(m.loadTickets(), m.spin.Tick)
	case key.Matches(msg, m.keys.Logout):
		m.backend.Logout()
		m.resetToLogin()
		return m, m.setNotice("Logged out", false)
	}
	return m, nil
}

func (m Model) handlePaymentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.leavePayment()
		return m, m.loadTickets()
	case tea.KeyTab:
		// Toggle the payment method.
		if m.payMethod == api.MethodCreditCard {
			m.payMethod = api.MethodDebitCard
		} else {
			m.payMethod = api.MethodCreditCard
		}
		return m, nil
	case tea.KeyEnter:
		if m.paying {
			return m, nil
		}
		if strings.TrimSpace(m.payCard.Value()) == "" {
			return m, m.setNotice("Card number is required", true)
		}
		if m.payRemaining.Expired {
			return m, m.setNotice("Payment window expired; the reservation was released", true)
		}
		m.paying = true
		return m, m.submitPayment()
	}

	var cmd tea.Cmd
	m.payCard, cmd = m.payCard.Update(msg)
	return m, cmd
}
