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

func venuesCommand() *cli.Command {
	return &cli.Command{
		Name:    "venues",
		Summary: "manage venues and assignments (admin)",
		Subcommands: []*cli.Command{
			venuesListCommand(),
			venuesShowCommand(),
			venuesCreateCommand(),
			venuesUpdateCommand(),
			venuesDeleteCommand(),
			venuesAssignCommand(),
			venuesUnassignCommand(),
		},
	}
}

type venuesListParams struct {
	cli.JSONOutput
	commonParams
}

func venuesListCommand() *cli.Command {
	var params venuesListParams
	return &cli.Command{
		Name:    "list",
		Summary: "list venues",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Roles(api.RoleAdmin)); err != nil {
				return err
			}
			venues, err := app.venues.List(context.Background())
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(venues); done {
				return err
			}
			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tADDRESS\tCAPACITY")
			for _, venue := range venues {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", venue.ID, venue.Name, venue.Address, venue.Capacity)
			}
			return tw.Flush()
		},
	}
}

type venuesShowParams struct {
	cli.JSONOutput
	commonParams
}

func venuesShowCommand() *cli.Command {
	var params venuesShowParams
	return &cli.Command{
		Name:    "show",
		Summary: "show one venue",
		Usage:   "reservations venues show <venue-id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one venue ID")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Roles(api.RoleAdmin)); err != nil {
				return err
			}
			venue, err := app.venues.Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(venue); done {
				return err
			}
			fmt.Printf("Name:      %s\n", venue.Name)
			fmt.Printf("Address:   %s\n", venue.Address)
			fmt.Printf("Capacity:  %d\n", venue.Capacity)
			if venue.Description != "" {
				fmt.Printf("\n%s\n", venue.Description)
			}
			return nil
		},
	}
}

type venuesCreateParams struct {
	cli.JSONOutput
	commonParams
	Name        string `flag:"name" desc:"venue name"`
	Address     string `flag:"address" desc:"street address"`
	Description string `flag:"description" desc:"venue description"`
	Capacity    int    `flag:"capacity" desc:"seating capacity"`
}

func venuesCreateCommand() *cli.Command {
	var params venuesCreateParams
	return &cli.Command{
		Name:    "create",
		Summary: "create a venue",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("create", &params)
		},
		Run: func(args []string) error {
			if params.Name == "" || params.Address == "" || params.Capacity <= 0 {
				return fmt.Errorf("--name, --address, and a positive --capacity are required")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Roles(api.RoleAdmin)); err != nil {
				return err
			}
			venue, err := app.venues.Create(context.Background(), api.CreateVenueRequest{
				Name:        params.Name,
				Address:     params.Address,
				Description: params.Description,
				Capacity:    params.Capacity,
			})
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(venue); done {
				return err
			}
			fmt.Printf("Created venue %s\n", venue.ID)
			return nil
		},
	}
}

type venuesUpdateParams struct {
	cli.JSONOutput
	commonParams
	Name        string `flag:"name" desc:"new name"`
	Address     string `flag:"address" desc:"new address"`
	Description string `flag:"description" desc:"new description"`
	Capacity    int    `flag:"capacity" default:"-1" desc:"new capacity"`
}

func venuesUpdateCommand() *cli.Command {
	var params venuesUpdateParams
	return &cli.Command{
		Name:    "update",
		Summary: "update venue fields",
		Usage:   "reservations venues update <venue-id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("update", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one venue ID")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Roles(api.RoleAdmin)); err != nil {
				return err
			}

			var request api.UpdateVenueRequest
			if params.Name != "" {
				request.Name = &params.Name
			}
			if params.Address != "" {
				request.Address = &params.Address
			}
			if params.Description != "" {
				request.Description = &params.Description
			}
			if params.Capacity >= 0 {
				request.Capacity = &params.Capacity
			}

			venue, err := app.venues.Update(context.Background(), args[0], request)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(venue); done {
				return err
			}
			fmt.Printf("Updated venue %s\n", venue.ID)
			return nil
		},
	}
}

func venuesDeleteCommand() *cli.Command {
	var params struct{ commonParams }
	return &cli.Command{
		Name:    "delete",
		Summary: "delete a venue",
		Usage:   "reservations venues delete <venue-id>",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("delete", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one venue ID")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Roles(api.RoleAdmin)); err != nil {
				return err
			}
			if err := app.venues.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted venue %s\n", args[0])
			return nil
		},
	}
}

type assignParams struct {
	commonParams
	User   string   `flag:"user" desc:"power user ID"`
	Venues []string `flag:"venue" desc:"venue ID (repeatable)"`
}

func venuesAssignCommand() *cli.Command {
	var params assignParams
	return &cli.Command{
		Name:    "assign",
		Summary: "assign venues to a power user",
		Usage:   "reservations venues assign --user <user-id> --venue <venue-id> [--venue ...]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("assign", &params)
		},
		Run: func(args []string) error {
			if params.User == "" || len(params.Venues) == 0 {
				return fmt.Errorf("--user and at least one --venue are required")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Roles(api.RoleAdmin)); err != nil {
				return err
			}
			if err := app.venues.AssignAll(context.Background(), params.User, params.Venues); err != nil {
				return err
			}
			fmt.Printf("Assigned %d venue(s) to %s\n", len(params.Venues), params.User)
			return nil
		},
	}
}

func venuesUnassignCommand() *cli.Command {
	var params assignParams
	return &cli.Command{
		Name:    "unassign",
		Summary: "remove venue assignments from a power user",
		Usage:   "reservations venues unassign --user <user-id> --venue <venue-id> [--venue ...]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("unassign", &params)
		},
		Run: func(args []string) error {
			if params.User == "" || len(params.Venues) == 0 {
				return fmt.Errorf("--user and at least one --venue are required")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Roles(api.RoleAdmin)); err != nil {
				return err
			}
			if err := app.venues.UnassignAll(context.Background(), params.User, params.Venues); err != nil {
				return err
			}
			fmt.Printf("Removed %d assignment(s) from %s\n", len(params.Venues), params.User)
			return nil
		},
	}
}
