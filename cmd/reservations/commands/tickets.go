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
	"github.com/jniedzwiecki/reservations-ui/lib/countdown"
	"github.com/jniedzwiecki/reservations-ui/lib/guard"
)

func ticketsCommand() *cli.Command {
	return &cli.Command{
		Name:    "tickets",
		Summary: "reserve and manage tickets",
		Subcommands: []*cli.Command{
			ticketsListCommand(),
			ticketsShowCommand(),
			ticketsReserveCommand(),
			ticketsCancelCommand(),
		},
	}
}

type ticketsListParams struct {
	cli.JSONOutput
	commonParams
}

func ticketsListCommand() *cli.Command {
	var params ticketsListParams
	return &cli.Command{
		Name:    "list",
		Summary: "list my tickets",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Auth()); err != nil {
				return err
			}
			tickets, err := app.tickets.Mine(context.Background())
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(tickets); done {
				return err
			}
			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "NUMBER\tEVENT\tPRICE\tSTATUS\tPAY BY")
			now := app.clock.Now()
			for _, ticket := range tickets {
				payBy := ""
				if ticket.PaymentExpiresAt != "" {
					remaining := countdown.ForTicket(ticket.PaymentExpiresAt, now)
					if remaining.Expired {
						payBy = "expired"
					} else {
						payBy = remaining.String()
					}
				}
				fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\n",
					ticket.TicketNumber, ticket.EventName, ticket.Price, ticket.Status, payBy)
			}
			return tw.Flush()
		},
	}
}

type ticketsShowParams struct {
	cli.JSONOutput
	commonParams
}

func ticketsShowCommand() *cli.Command {
	var params ticketsShowParams
	return &cli.Command{
		Name:    "show",
		Summary: "show one ticket",
		Usage:   "reservations tickets show <ticket-id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one ticket ID")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Auth()); err != nil {
				return err
			}
			ticket, err := app.tickets.Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(ticket); done {
				return err
			}
			fmt.Printf("Number:   %s\n", ticket.TicketNumber)
			fmt.Printf("Event:    %s (%s)\n", ticket.EventName, ticket.EventDateTime)
			fmt.Printf("Price:    %.2f\n", ticket.Price)
			fmt.Printf("Status:   %s\n", ticket.Status)
			if ticket.PaymentExpiresAt != "" {
				remaining := countdown.ForTicket(ticket.PaymentExpiresAt, app.clock.Now())
				if remaining.Expired {
					fmt.Println("Payment:  window expired")
				} else {
					fmt.Printf("Payment:  %s remaining\n", remaining)
				}
			}
			return nil
		},
	}
}

type ticketsReserveParams struct {
	cli.JSONOutput
	commonParams
}

func ticketsReserveCommand() *cli.Command {
	var params ticketsReserveParams
	return &cli.Command{
		Name:    "reserve",
		Summary: "reserve a ticket for an event",
		Usage:   "reservations tickets reserve <event-id> [flags]",
		Examples: []cli.Example{
			{Description: "Reserve and immediately pay", Command: "reservations tickets reserve ev-42 && reservations pay <ticket-id> --card 4111..."},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("reserve", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one event ID")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Auth()); err != nil {
				return err
			}
			ticket, err := app.tickets.Reserve(context.Background(), args[0])
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(ticket); done {
				return err
			}
			fmt.Printf("Reserved %s (ticket %s)\n", ticket.EventName, ticket.TicketNumber)
			if ticket.PaymentExpiresAt != "" {
				remaining := countdown.ForTicket(ticket.PaymentExpiresAt, app.clock.Now())
				fmt.Printf("Pay within %s or the reservation is released.\n", remaining)
			}
			return nil
		},
	}
}

func ticketsCancelCommand() *cli.Command {
	var params struct{ commonParams }
	return &cli.Command{
		Name:    "cancel",
		Summary: "cancel a ticket",
		Usage:   "reservations tickets cancel <ticket-id>",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("cancel", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one ticket ID")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Auth()); err != nil {
				return err
			}
			if err := app.tickets.Cancel(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Cancelled ticket %s\n", args[0])
			return nil
		},
	}
}
