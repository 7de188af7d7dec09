// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package reservationui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the reservations TUI.
type KeyMap struct {
	// Navigation.
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// View switching.
	TabEvents  key.Binding
	TabTickets key.Binding

	// Actions.
	Select  key.Binding // Open the event under the cursor.
	Reserve key.Binding // Reserve a ticket for the current event.
	Cancel  key.Binding // Cancel the ticket under the cursor.
	Pay     key.Binding // Open the payment form for a reserved ticket.
	Refresh key.Binding
	Back    key.Binding

	// Filter.
	FilterActivate key.Binding
	FilterClear    key.Binding

	// Session.
	Logout key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	TabEvents: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "events"),
	),
	TabTickets: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "my tickets"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "open"),
	),
	Reserve: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reserve"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "cancel ticket"),
	),
	Pay: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pay"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "refresh"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("Esc", "back"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "clear filter"),
	),
	Logout: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("C-l", "logout"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
