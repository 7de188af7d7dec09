// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jniedzwiecki/reservations-ui/cmd/reservations/cli"
	"github.com/jniedzwiecki/reservations-ui/lib/guard"
)

// readPassword prompts for a password without echo when stdin is a
// terminal, and reads one plain line otherwise (scripts, tests).
func readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, prompt)
		password, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(password), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

type loginParams struct {
	commonParams
	Email    string `flag:"email,e" desc:"account email"`
	Password string `flag:"password" desc:"account password (prompted when omitted)"`
}

func loginCommand() *cli.Command {
	var params loginParams
	return &cli.Command{
		Name:    "login",
		Summary: "authenticate and store the session",
		Usage:   "reservations login --email <email> [flags]",
		Examples: []cli.Example{
			{Description: "Log in, prompting for the password", Command: "reservations login -e jan@example.com"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("login", &params)
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
			user, err := app.sessions.Login(context.Background(), params.Email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (%s)\n", user.Email, user.Role)
			return nil
		},
	}
}

type registerParams struct {
	commonParams
	Email    string `flag:"email,e" desc:"account email"`
	Password string `flag:"password" desc:"account password (prompted when omitted)"`
}

func registerCommand() *cli.Command {
	var params registerParams
	return &cli.Command{
		Name:    "register",
		Summary: "create an account and log in",
		Usage:   "reservations register --email <email> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("register", &params)
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
			user, err := app.sessions.Register(context.Background(), params.Email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Registered %s (%s)\n", user.Email, user.Role)
			return nil
		},
	}
}

func logoutCommand() *cli.Command {
	var params struct{ commonParams }
	return &cli.Command{
		Name:    "logout",
		Summary: "clear the stored session",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("logout", &params)
		},
		Run: func(args []string) error {
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.sessions.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

type whoamiParams struct {
	cli.JSONOutput
	commonParams
}

func whoamiCommand() *cli.Command {
	var params whoamiParams
	return &cli.Command{
		Name:    "whoami",
		Summary: "show the current session",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("whoami", &params)
		},
		Run: func(args []string) error {
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Auth()); err != nil {
				return err
			}
			user := app.sessions.CurrentUser()

			if done, err := params.EmitJSON(user); done {
				return err
			}
			fmt.Printf("Email: %s\nRole:  %s\n", user.Email, user.Role)
			return nil
		},
	}
}
