// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package reservationui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jniedzwiecki/reservations-ui/lib/api"
	"github.com/jniedzwiecki/reservations-ui/lib/tui"
)

// View renders the active screen plus the status bar.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var body string
	switch m.view {
	case ViewLogin:
		body = m.viewLogin()
	case ViewEvents:
		body = m.viewEvents()
	case ViewEventDetail:
		body = m.viewEventDetail()
	case ViewMyTickets:
		body = m.viewMyTickets()
	case ViewPayment:
		body = m.viewPayment()
	}

	return body + "\n" + m.viewStatusBar()
}

func (m Model) headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(m.theme.HeaderForeground)
}

func (m Model) faintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(m.theme.FaintText)
}

func (m Model) viewLogin() string {
	var b strings.Builder
	title := "Login"
	if m.registering {
		title = "Register"
	}
	b.WriteString(m.headerStyle().Render(title))
	b.WriteString("\n\n")
	b.WriteString("  " + m.emailInput.View() + "\n")
	b.WriteString("  " + m.passwordInput.View() + "\n\n")
	b.WriteString(m.faintStyle().Render("Enter submit · Tab switch field · C-n toggle register · C-c quit"))
	return b.String()
}

func (m Model) viewEvents() string {
	var b strings.Builder
	b.WriteString(m.headerStyle().Render("Events"))
	if user := m.backend.CurrentUser(); user != nil {
		b.WriteString(m.faintStyle().Render("  " + user.Email))
	}
	b.WriteString("\n\n")

	if m.filterOn || m.filter.Value() != "" {
		b.WriteString("  / " + m.filter.View() + "\n\n")
	}

	visible := m.filteredEvents()
	if len(visible) == 0 {
		b.WriteString(m.faintStyle().Render("  no events"))
		b.WriteString("\n")
	}
	for index, event := range visible {
		b.WriteString(m.renderEventRow(event, index == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpLine("Enter open · r reserve · / filter · 2 my tickets · C-r refresh · C-l logout · q quit"))
	return b.String()
}

func (m Model) renderEventRow(event api.Event, selected bool) string {
	status := lipgloss.NewStyle().
		Foreground(m.theme.EventStatusColor(event.Status)).
		Render(string(event.Status))

	availability := fmt.Sprintf("%d/%d", event.AvailableTickets, event.Capacity)
	if event.AvailableTickets == 0 {
		availability = lipgloss.NewStyle().Foreground(m.theme.SoldOut).Render("SOLD OUT")
	}

	row := fmt.Sprintf("%-40s %-12s %10.2f  %s  %s",
		truncate(event.Name, 40), event.EventDateTime, event.Price, availability, status)

	if selected {
		return lipgloss.NewStyle().
			Background(m.theme.SelectedBackground).
			Foreground(m.theme.SelectedForeground).
			Render("> " + row)
	}
	return lipgloss.NewStyle().Foreground(m.theme.NormalText).Render("  " + row)
}

func (m Model) viewEventDetail() string {
	if m.detail == nil {
		return m.faintStyle().Render("no event selected")
	}
	event := m.detail

	var b strings.Builder
	b.WriteString(m.headerStyle().Render(event.Name))
	b.WriteString("\n\n")

	status := lipgloss.NewStyle().
		Foreground(m.theme.EventStatusColor(event.Status)).
		Render(string(event.Status))
	b.WriteString(fmt.Sprintf("  When:      %s\n", event.EventDateTime))
	b.WriteString(fmt.Sprintf("  Price:     %.2f\n", event.Price))
	b.WriteString(fmt.Sprintf("  Available: %d of %d\n", event.AvailableTickets, event.Capacity))
	b.WriteString(fmt.Sprintf("  Status:    %s\n", status))

	if event.Description != "" {
		width := m.width - 4
		if width < 20 {
			width = 20
		}
		b.WriteString("\n")
		b.WriteString(tui.RenderMarkdown(event.Description, m.theme, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpLine("r reserve · Esc back · 2 my tickets · q quit"))
	return b.String()
}

func (m Model) viewMyTickets() string {
	var b strings.Builder
	b.WriteString(m.headerStyle().Render("My Tickets"))
	b.WriteString("\n\n")

	if len(m.tickets) == 0 {
		b.WriteString(m.faintStyle().Render("  no tickets"))
		b.WriteString("\n")
	}
	for index, ticket := range m.tickets {
		status := lipgloss.NewStyle().
			Foreground(m.theme.TicketStatusColor(ticket.Status)).
			Render(string(ticket.Status))
		row := fmt.Sprintf("%-14s %-36s %10.2f  %s",
			ticket.TicketNumber, truncate(ticket.EventName, 36), ticket.Price, status)
		if index == m.ticketCursor {
			row = lipgloss.NewStyle().
				Background(m.theme.SelectedBackground).
				Foreground(m.theme.SelectedForeground).
				Render("> " + row)
		} else {
			row = lipgloss.NewStyle().Foreground(m.theme.NormalText).Render("  " + row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpLine("p pay · x cancel · 1 events · C-r refresh · q quit"))
	return b.String()
}

func (m Model) viewPayment() string {
	if m.payTicket == nil {
		return m.faintStyle().Render("no pending payment")
	}

	countdownColor := m.theme.Countdown
	if m.payRemaining.Minutes == 0 && m.payRemaining.Seconds < 10 {
		countdownColor = m.theme.CountdownUrgent
	}
	remaining := lipgloss.NewStyle().Bold(true).Foreground(countdownColor).
		Render(m.payRemaining.String())

	var b strings.Builder
	b.WriteString(m.headerStyle().Render("Payment"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Ticket:    %s (%s)\n", m.payTicket.TicketNumber, m.payTicket.EventName))
	b.WriteString(fmt.Sprintf("  Amount:    %.2f\n", m.payTicket.Price))
	b.WriteString(fmt.Sprintf("  Method:    %s\n", m.payMethod))
	b.WriteString(fmt.Sprintf("  Time left: %s\n\n", remaining))
	b.WriteString("  " + m.payCard.View() + "\n\n")
	if m.paying {
		b.WriteString(m.faintStyle().Render("  processing..."))
		b.WriteString("\n")
	}
	b.WriteString(m.helpLine("Enter pay · Tab switch method · Esc abandon"))
	return b.String()
}

func (m Model) viewStatusBar() string {
	if m.notice == "" {
		if m.loading {
			return m.spin.View() + m.faintStyle().Render(" loading")
		}
		return ""
	}
	color := m.theme.SuccessForeground
	if m.noticeIsError {
		color = m.theme.ErrorForeground
	}
	return lipgloss.NewStyle().Foreground(color).Render(m.notice)
}

func (m Model) helpLine(text string) string {
	return lipgloss.NewStyle().Foreground(m.theme.HelpText).Render(text)
}

func truncate(s string, max int) string {
	return ansi.Truncate(s, max, "…")
}
