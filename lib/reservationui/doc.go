// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

// Package reservationui is the interactive terminal UI for browsing
// events, reserving tickets, and paying for reservations.
//
// The [Model] is a standard bubbletea model covering five screens:
// login, the event list, a single event's detail, the user's tickets,
// and the payment form. All platform access goes through the [Backend]
// interface so tests can drive the full message loop against a stub.
//
// The payment screen runs a once-per-second countdown toward the
// reservation's payment deadline. Each countdown tick carries a
// generation number; abandoning or completing the payment bumps the
// generation so stale ticks from the old screen are discarded instead
// of corrupting a later payment's timer.
package reservationui
