// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/jniedzwiecki/reservations-ui/cmd/reservations/cli"
	"github.com/jniedzwiecki/reservations-ui/lib/reservationui"
)

func browseCommand() *cli.Command {
	var params struct{ commonParams }
	return &cli.Command{
		Name:    "browse",
		Summary: "interactive terminal UI",
		Description: "Open the full-screen terminal UI for browsing events,\n" +
			"reserving tickets, and paying for reservations.",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("browse", &params)
		},
		Run: func(args []string) error {
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}

			backend := reservationui.NewBackend(app.sessions, app.events, app.tickets, app.payments)
			model := reservationui.New(reservationui.Config{
				Backend: backend,
				Clock:   app.clock,
			})

			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running UI: %w", err)
			}
			return nil
		},
	}
}
