// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared building blocks for the reservations
// terminal UI: the color theme and a terminal markdown renderer used
// for event descriptions.
package tui
