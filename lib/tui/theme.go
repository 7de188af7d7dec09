// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jniedzwiecki/reservations-ui/lib/api"
)

// Theme defines the color palette for the reservations terminal UI.
// All colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
//
// The fields cover universal chrome (text, selection, borders) and the
// semantic categories that recur across views: event lifecycle, ticket
// lifecycle, and payment outcome.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Event lifecycle colors.
	EventDraft     lipgloss.Color
	EventPublished lipgloss.Color
	EventCancelled lipgloss.Color
	EventCompleted lipgloss.Color

	// Ticket lifecycle colors.
	TicketReserved      lipgloss.Color
	TicketPaid          lipgloss.Color
	TicketCancelled     lipgloss.Color
	TicketPaymentFailed lipgloss.Color

	// Payment countdown accents. CountdownUrgent takes over below ten
	// seconds remaining.
	Countdown       lipgloss.Color
	CountdownUrgent lipgloss.Color

	// Availability: sold-out events and full capacity bars.
	SoldOut lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Status bar notices.
	ErrorForeground   lipgloss.Color
	SuccessForeground lipgloss.Color
}

// EventStatusColor returns the color for an event status. Unknown
// values return FaintText.
func (theme Theme) EventStatusColor(status api.EventStatus) lipgloss.Color {
	switch status {
	case api.EventDraft:
		return theme.EventDraft
	case api.EventPublished:
		return theme.EventPublished
	case api.EventCancelled:
		return theme.EventCancelled
	case api.EventCompleted:
		return theme.EventCompleted
	default:
		return theme.FaintText
	}
}

// TicketStatusColor returns the color for a ticket status. Unknown
// values return FaintText.
func (theme Theme) TicketStatusColor(status api.TicketStatus) lipgloss.Color {
	switch status {
	case api.TicketReserved:
		return theme.TicketReserved
	case api.TicketPaid:
		return theme.TicketPaid
	case api.TicketCancelled:
		return theme.TicketCancelled
	case api.TicketPaymentFailed:
		return theme.TicketPaymentFailed
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	EventDraft:     lipgloss.Color("245"), // gray
	EventPublished: lipgloss.Color("114"), // green
	EventCancelled: lipgloss.Color("196"), // red
	EventCompleted: lipgloss.Color("75"),  // blue

	TicketReserved:      lipgloss.Color("220"), // yellow/amber
	TicketPaid:          lipgloss.Color("114"), // green
	TicketCancelled:     lipgloss.Color("245"), // gray
	TicketPaymentFailed: lipgloss.Color("196"), // red

	Countdown:       lipgloss.Color("220"), // amber
	CountdownUrgent: lipgloss.Color("196"), // red

	SoldOut: lipgloss.Color("208"), // orange

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	ErrorForeground:   lipgloss.Color("196"),
	SuccessForeground: lipgloss.Color("114"),
}
