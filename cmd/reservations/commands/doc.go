// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands implements the reservations CLI command tree:
// authentication, event browsing and management, ticket reservation
// and payment, venue and user administration, the sales dashboard,
// and the interactive TUI.
package commands
