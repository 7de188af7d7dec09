// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the
// reservations client.
//
// Configuration is loaded from a single file specified by:
//   - RESERVATIONS_CONFIG environment variable, or
//   - --config flag passed to the command
//
// When neither is given the built-in defaults apply, which target a
// platform running on localhost. There is no config file discovery:
// a set path that cannot be read is an error, never a silent fallback.
package config
