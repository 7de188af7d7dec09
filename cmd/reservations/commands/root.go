// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/jniedzwiecki/reservations-ui/cmd/reservations/cli"
)

// Root builds and returns the complete reservations CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "reservations",
		Description: `Reservations: event ticketing from the terminal.

Browse published events, reserve and pay for tickets, and manage
events, venues, and accounts according to your role.`,
		Examples: []cli.Example{
			{Description: "Log in", Command: "reservations login --email you@example.com"},
			{Description: "List published events", Command: "reservations events list"},
			{Description: "Open the interactive UI", Command: "reservations browse"},
		},
		Subcommands: []*cli.Command{
			loginCommand(),
			registerCommand(),
			logoutCommand(),
			whoamiCommand(),
			browseCommand(),
			eventsCommand(),
			ticketsCommand(),
			payCommand(),
			paymentStatusCommand(),
			dashboardCommand(),
			venuesCommand(),
			usersCommand(),
		},
	}
}
