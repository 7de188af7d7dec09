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

func eventsCommand() *cli.Command {
	return &cli.Command{
		Name:    "events",
		Summary: "browse and manage events",
		Subcommands: []*cli.Command{
			eventsListCommand(),
			eventsShowCommand(),
			eventsCreateCommand(),
			eventsUpdateCommand(),
			eventsStatusCommand(),
			eventsDeleteCommand(),
			eventsSalesCommand(),
		},
	}
}

type eventsListParams struct {
	cli.JSONOutput
	commonParams
}

func eventsListCommand() *cli.Command {
	var params eventsListParams
	return &cli.Command{
		Name:    "list",
		Summary: "list events",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			events, err := app.events.List(context.Background())
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(events); done {
				return err
			}
			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tWHEN\tPRICE\tAVAILABLE\tSTATUS")
			for _, event := range events {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%d/%d\t%s\n",
					event.ID, event.Name, event.EventDateTime, event.Price,
					event.AvailableTickets, event.Capacity, event.Status)
			}
			return tw.Flush()
		},
	}
}

type eventsShowParams struct {
	cli.JSONOutput
	commonParams
}

func eventsShowCommand() *cli.Command {
	var params eventsShowParams
	return &cli.Command{
		Name:    "show",
		Summary: "show one event",
		Usage:   "reservations events show <event-id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one event ID")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			event, err := app.events.Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(event); done {
				return err
			}
			fmt.Printf("Name:       %s\n", event.Name)
			fmt.Printf("When:       %s\n", event.EventDateTime)
			fmt.Printf("Price:      %.2f\n", event.Price)
			fmt.Printf("Available:  %d of %d\n", event.AvailableTickets, event.Capacity)
			fmt.Printf("Status:     %s\n", event.Status)
			if event.Description != "" {
				fmt.Printf("\n%s\n", event.Description)
			}
			return nil
		},
	}
}

type eventsCreateParams struct {
	cli.JSONOutput
	commonParams
	Name        string  `flag:"name" desc:"event name"`
	Description string  `flag:"description" desc:"event description (markdown)"`
	When        string  `flag:"when" desc:"event date and time (ISO-8601)"`
	Capacity    int     `flag:"capacity" desc:"ticket capacity"`
	Price       float64 `flag:"price" desc:"ticket price"`
	VenueID     string  `flag:"venue" desc:"venue ID"`
	Publish     bool    `flag:"publish" desc:"create as PUBLISHED instead of DRAFT"`
}

func eventsCreateCommand() *cli.Command {
	var params eventsCreateParams
	return &cli.Command{
		Name:    "create",
		Summary: "create an event (power user)",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("create", &params)
		},
		Run: func(args []string) error {
			if params.Name == "" || params.When == "" || params.Capacity <= 0 {
				return fmt.Errorf("--name, --when, and a positive --capacity are required")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Roles(api.RolePowerUser, api.RoleAdmin)); err != nil {
				return err
			}

			status := api.EventDraft
			if params.Publish {
				status = api.EventPublished
			}
			event, err := app.events.Create(context.Background(), api.CreateEventRequest{
				Name:          params.Name,
				Description:   params.Description,
				EventDateTime: params.When,
				Capacity:      params.Capacity,
				Price:         params.Price,
				Status:        status,
				VenueID:       params.VenueID,
			})
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(event); done {
				return err
			}
			fmt.Printf("Created event %s (%s)\n", event.ID, event.Status)
			return nil
		},
	}
}

type eventsUpdateParams struct {
	cli.JSONOutput
	commonParams
	Name        string  `flag:"name" desc:"new name"`
	Description string  `flag:"description" desc:"new description"`
	When        string  `flag:"when" desc:"new date and time (ISO-8601)"`
	Capacity    int     `flag:"capacity" default:"-1" desc:"new capacity"`
	Price       float64 `flag:"price" default:"-1" desc:"new price"`
}

func eventsUpdateCommand() *cli.Command {
	var params eventsUpdateParams
	return &cli.Command{
		Name:    "update",
		Summary: "update event fields (power user)",
		Usage:   "reservations events update <event-id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("update", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one event ID")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Roles(api.RolePowerUser, api.RoleAdmin)); err != nil {
				return err
			}

			// Only flags the user actually set become request fields; the
			// server leaves the rest unchanged.
			var request api.UpdateEventRequest
			if params.Name != "" {
				request.Name = &params.Name
			}
			if params.Description != "" {
				request.Description = &params.Description
			}
			if params.When != "" {
				request.EventDateTime = &params.When
			}
			if params.Capacity >= 0 {
				request.Capacity = &params.Capacity
			}
			if params.Price >= 0 {
				request.Price = &params.Price
			}

			event, err := app.events.Update(context.Background(), args[0], request)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(event); done {
				return err
			}
			fmt.Printf("Updated event %s\n", event.ID)
			return nil
		},
	}
}

type eventsStatusParams struct {
	cli.JSONOutput
	commonParams
}

func eventsStatusCommand() *cli.Command {
	var params eventsStatusParams
	return &cli.Command{
		Name:    "status",
		Summary: "change an event's lifecycle status (power user)",
		Usage:   "reservations events status <event-id> <DRAFT|PUBLISHED|CANCELLED|COMPLETED>",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("status", &params)
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected an event ID and a status")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Roles(api.RolePowerUser, api.RoleAdmin)); err != nil {
				return err
			}

			event, err := app.events.UpdateStatus(context.Background(), args[0], api.EventStatus(args[1]))
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(event); done {
				return err
			}
			fmt.Printf("Event %s is now %s\n", event.ID, event.Status)
			return nil
		},
	}
}

func eventsDeleteCommand() *cli.Command {
	var params struct{ commonParams }
	return &cli.Command{
		Name:    "delete",
		Summary: "delete an event (power user)",
		Usage:   "reservations events delete <event-id>",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("delete", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one event ID")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Roles(api.RolePowerUser, api.RoleAdmin)); err != nil {
				return err
			}
			if err := app.events.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted event %s\n", args[0])
			return nil
		},
	}
}

type eventsSalesParams struct {
	cli.JSONOutput
	commonParams
}

func eventsSalesCommand() *cli.Command {
	var params eventsSalesParams
	return &cli.Command{
		Name:    "sales",
		Summary: "show sales for one event (power user)",
		Usage:   "reservations events sales <event-id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("sales", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one event ID")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Roles(api.RolePowerUser, api.RoleAdmin)); err != nil {
				return err
			}

			sales, err := app.events.Sales(context.Background(), args[0])
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(sales); done {
				return err
			}
			fmt.Printf("Event:     %s\n", sales.EventName)
			fmt.Printf("Sold:      %d of %d (%.1f%%)\n", sales.TicketsSold, sales.Capacity, sales.OccupancyRate)
			fmt.Printf("Revenue:   %.2f\n", sales.Revenue)
			return nil
		},
	}
}
