// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/jniedzwiecki/reservations-ui/cmd/reservations/cli"
	"github.com/jniedzwiecki/reservations-ui/lib/api"
	"github.com/jniedzwiecki/reservations-ui/lib/guard"
)

type dashboardParams struct {
	cli.JSONOutput
	commonParams
}

// dashboardCommand renders the sales dashboard: one row per event with
// occupancy and revenue, fetched concurrently. A failure on any event
// fails the whole dashboard rather than showing partial numbers.
func dashboardCommand() *cli.Command {
	var params dashboardParams
	return &cli.Command{
		Name:    "dashboard",
		Summary: "sales dashboard across all events (power user)",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("dashboard", &params)
		},
		Run: func(args []string) error {
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Roles(api.RolePowerUser, api.RoleAdmin)); err != nil {
				return err
			}

			ctx := context.Background()
			events, err := app.events.List(ctx)
			if err != nil {
				return err
			}
			sales, err := app.events.AllSales(ctx, events)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(sales); done {
				return err
			}

			var totalRevenue float64
			var totalSold, totalCapacity int
			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "EVENT\tSOLD\tOCCUPANCY\tREVENUE")
			for _, entry := range sales {
				fmt.Fprintf(tw, "%s\t%d/%d\t%.1f%%\t%.2f\n",
					entry.EventName, entry.TicketsSold, entry.Capacity,
					entry.OccupancyRate, entry.Revenue)
				totalRevenue += entry.Revenue
				totalSold += entry.TicketsSold
				totalCapacity += entry.Capacity
			}
			fmt.Fprintf(tw, "TOTAL\t%d/%d\t\t%.2f\n", totalSold, totalCapacity, totalRevenue)
			return tw.Flush()
		},
	}
}
