// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/jniedzwiecki/reservations-ui/cmd/reservations/cli"
	"github.com/jniedzwiecki/reservations-ui/lib/api"
	"github.com/jniedzwiecki/reservations-ui/lib/guard"
)

type payParams struct {
	cli.JSONOutput
	commonParams
	Card   string `flag:"card" desc:"card number"`
	Method string `flag:"method" default:"CREDIT_CARD" desc:"payment method (CREDIT_CARD or DEBIT_CARD)"`
}

func payCommand() *cli.Command {
	var params payParams
	return &cli.Command{
		Name:    "pay",
		Summary: "pay for a reserved ticket",
		Usage:   "reservations pay <ticket-id> --card <number> [flags]",
		Examples: []cli.Example{
			{Description: "Pay with a credit card", Command: "reservations pay t-17 --card 4111111111111111"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("pay", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one ticket ID")
			}
			if params.Card == "" {
				return fmt.Errorf("--card is required")
			}
			method := api.PaymentMethod(params.Method)
			if method != api.MethodCreditCard && method != api.MethodDebitCard {
				return fmt.Errorf("unknown payment method %q", params.Method)
			}

			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Auth()); err != nil {
				return err
			}

			payment, err := app.payments.Process(context.Background(), api.PaymentRequest{
				TicketID:       args[0],
				PaymentMethod:  method,
				CardNumber:     params.Card,
				IdempotencyKey: api.NewIdempotencyKey(),
			})
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(payment); done {
				return err
			}
			switch payment.Status {
			case api.PaymentCompleted:
				fmt.Printf("Payment %s completed (%.2f)\n", payment.ID, payment.Amount)
			case api.PaymentFailed:
				fmt.Printf("Payment failed: %s\n", payment.FailureReason)
				return &cli.ExitError{Code: 1}
			default:
				fmt.Printf("Payment %s is %s\n", payment.ID, payment.Status)
			}
			return nil
		},
	}
}

type paymentStatusParams struct {
	cli.JSONOutput
	commonParams
	Ticket bool `flag:"ticket" desc:"look up by ticket ID instead of payment ID"`
}

func paymentStatusCommand() *cli.Command {
	var params paymentStatusParams
	return &cli.Command{
		Name:    "payment",
		Summary: "look up a payment",
		Usage:   "reservations payment <payment-id> [--ticket] [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("payment", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one ID")
			}
			app, err := newAppContext(params.commonParams)
			if err != nil {
				return err
			}
			if err := app.requireGuard(guard.Auth()); err != nil {
				return err
			}

			var payment *api.Payment
			if params.Ticket {
				payment, err = app.payments.ByTicket(context.Background(), args[0])
			} else {
				payment, err = app.payments.Get(context.Background(), args[0])
			}
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(payment); done {
				return err
			}
			fmt.Printf("Payment:  %s\n", payment.ID)
			fmt.Printf("Ticket:   %s\n", payment.TicketID)
			fmt.Printf("Amount:   %.2f\n", payment.Amount)
			fmt.Printf("Status:   %s\n", payment.Status)
			if payment.FailureReason != "" {
				fmt.Printf("Failure:  %s\n", payment.FailureReason)
			}
			return nil
		},
	}
}
