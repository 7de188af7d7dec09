// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/jniedzwiecki/reservations-ui/cmd/reservations/cli"
	"github.com/jniedzwiecki/reservations-ui/lib/api"
	"github.com/jniedzwiecki/reservations-ui/lib/guard"
)

func usersCommand() *cli.Command {
	return &cli.Command{
		Name:    "users",
		Summary: "manage accounts (admin)",
		Subcommands: []*cli.Command{
			usersListCommand(),
			usersShowCommand(),
			usersDeleteCommand(),
			usersCreatePowerUserCommand(),
		},
	}
}

type usersListParams struct {
	cli.JSONOutput
	commonParams
}

func usersListCommand() *cli.Command {
	var params usersListParams
	return &cli.Command{
		Name:    "list",
		Summary: "list accounts",
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
			users, err := app.users.List(context.Background())
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(users); done {
				return err
			}
			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tEMAIL\tROLE\tVENUES")
			for _, user := range users {
				var venues []string
				for _, venue := range user.AssignedVenues {
					venues = append(venues, venue.Name)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					user.ID, user.Email, user.Role, strings.Join(venues, ", "))
			}
			return tw.Flush()
		},
	}
}

type usersShowParams struct {
	cli.JSONOutput
	commonParams
}

func usersShowCommand() *cli.Command {
	var params usersShowParams
	return &cli.Command{
		Name:    "show",
		Summary: "show one account",
		Usage:   "reservations users show <user-id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one user ID")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Roles(api.RoleAdmin)); err != nil {
				return err
			}
			user, err := app.users.Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(user); done {
				return err
			}
			fmt.Printf("Email:      %s\n", user.Email)
			fmt.Printf("Role:       %s\n", user.Role)
			fmt.Printf("Removable:  %v\n", user.IsRemovable)
			for _, venue := range user.AssignedVenues {
				fmt.Printf("Venue:      %s (%s)\n", venue.Name, venue.ID)
			}
			return nil
		},
	}
}

func usersDeleteCommand() *cli.Command {
	var params struct{ commonParams }
	return &cli.Command{
		Name:    "delete",
		Summary: "delete an account",
		Usage:   "reservations users delete <user-id>",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("delete", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one user ID")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Roles(api.RoleAdmin)); err != nil {
				return err
			}
			if err := app.users.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted user %s\n", args[0])
			return nil
		},
	}
}

type createPowerUserParams struct {
	cli.JSONOutput
	commonParams
	Email    string `flag:"email,e" desc:"account email"`
	Password string `flag:"password" desc:"account password (prompted when omitted)"`
}

func usersCreatePowerUserCommand() *cli.Command {
	var params createPowerUserParams
	return &cli.Command{
		Name:    "create-power-user",
		Summary: "create a power user account",
		Usage:   "reservations users create-power-user --email <email> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("create-power-user", &params)
		},
		Run: func(args []string) error {
			if params.Email == "" {
				return fmt.Errorf("--email is required")
			}
			password := params.Password
			if password == "" {
				var err error
				if password, err = readPassword("Password: "); err != nil {
					return err
				}
			}

			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Roles(api.RoleAdmin)); err != nil {
				return err
			}
			user, err := app.users.CreatePowerUser(context.Background(), api.CreatePowerUserRequest{
				Email:    params.Email,
				Password: password,
			})
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(user); done {
				return err
			}
			fmt.Printf("Created power user %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}
}
