// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for the reservations CLI: a
// declarative command tree with pflag-based flag binding from struct
// tags, typo suggestions for unknown commands and flags, JSON output
// support, and structured logging.
package cli
