// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestExecuteDispatchesSubcommand(t *testing.T) {
	var ran []string
	root := &Command{
		Name: "reservations",
		Subcommands: []*Command{
			{
				Name: "events",
				Subcommands: []*Command{
					{Name: "list", Run: func(args []string) error {
						ran = args
						return nil
					}},
				},
			},
		},
	}

	if err := root.Execute([]string{"events", "list", "extra"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(ran) != 1 || ran[0] != "extra" {
		t.Fatalf("run args = %v", ran)
	}
}

func TestExecuteUnknownCommandSuggests(t *testing.T) {
	root := &Command{
		Name: "reservations",
		Subcommands: []*Command{
			{Name: "events", Run: func([]string) error { return nil }},
			{Name: "tickets", Run: func([]string) error { return nil }},
		},
	}

	err := root.Execute([]string{"evnets"})
	if err == nil {
		t.Fatal("unknown command accepted")
	}
	if !strings.Contains(err.Error(), `did you mean "events"`) {
		t.Fatalf("error = %q, want a suggestion for events", err)
	}
}

func TestExecuteUnknownFlagSuggests(t *testing.T) {
	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.Bool("json", false, "output as JSON")
			return flagSet
		},
		Run: func([]string) error { return nil },
	}

	err := command.Execute([]string{"--jsno"})
	if err == nil {
		t.Fatal("unknown flag accepted")
	}
	if !strings.Contains(err.Error(), "--json") {
		t.Fatalf("error = %q, want a suggestion for --json", err)
	}
}

func TestExecuteParsesFlagsBeforeRun(t *testing.T) {
	var got string
	command := &Command{
		Name: "login",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flagSet.StringVar(&got, "email", "", "account email")
			return flagSet
		},
		Run: func([]string) error { return nil },
	}

	if err := command.Execute([]string{"--email", "jan@example.com"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got != "jan@example.com" {
		t.Fatalf("email = %q", got)
	}
}

func TestExecuteNoSubcommandShowsHelp(t *testing.T) {
	root := &Command{
		Name:        "reservations",
		Subcommands: []*Command{{Name: "events"}},
	}
	if err := root.Execute(nil); err == nil {
		t.Fatal("missing subcommand accepted")
	}
}

func TestPrintHelpListsSubcommands(t *testing.T) {
	root := &Command{
		Name:    "reservations",
		Summary: "event ticketing client",
		Subcommands: []*Command{
			{Name: "events", Summary: "browse events"},
			{Name: "tickets", Summary: "manage reservations"},
		},
	}

	var out strings.Builder
	root.PrintHelp(&out)
	help := out.String()
	for _, want := range []string{"events", "browse events", "tickets", "manage reservations"} {
		if !strings.Contains(help, want) {
			t.Fatalf("help output missing %q:\n%s", want, help)
		}
	}
}
