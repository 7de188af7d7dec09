// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jniedzwiecki/reservations-ui/cmd/reservations/cli"
	"github.com/jniedzwiecki/reservations-ui/lib/api"
	"github.com/jniedzwiecki/reservations-ui/lib/clock"
	"github.com/jniedzwiecki/reservations-ui/lib/config"
	"github.com/jniedzwiecki/reservations-ui/lib/guard"
	"github.com/jniedzwiecki/reservations-ui/lib/session"
)

// commonParams is embedded in every command's parameter struct. It
// carries the --config override shared by all commands.
type commonParams struct {
	ConfigPath string `flag:"config" desc:"path to config file (overrides RESERVATIONS_CONFIG)"`
}

// appContext bundles the wired-up services a command handler needs.
// Built per invocation: commands are short-lived processes.
type appContext struct {
	config   *config.Config
	store    *session.Store
	sessions *session.Manager
	auth     *api.AuthService
	events   *api.EventService
	tickets  *api.TicketService
	venues   *api.VenueService
	users    *api.UserService
	payments *api.PaymentService
	logger   *slog.Logger
	clock    clock.Clock
}

// newAppContext loads configuration and wires the session store, the
// two API clients (platform and payment service), and the domain
// services.
func newAppContext(params commonParams) (*appContext, error) {
	var cfg *config.Config
	var err error
	if params.ConfigPath != "" {
		cfg, err = config.LoadFile(params.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := cli.NewCommandLogger()
	store := session.NewStore(cfg.Session.Dir)
	httpClient := &http.Client{Timeout: cfg.API.RequestTimeout()}

	platform, err := api.NewClient(api.ClientConfig{
		BaseURL:    cfg.API.BaseURL,
		Tokens:     store,
		HTTPClient: httpClient,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	// Payments run on their own service with a separate base URL; the
	// session token is shared.
	paymentClient, err := api.NewClient(api.ClientConfig{
		BaseURL:    cfg.Payments.BaseURL,
		Tokens:     store,
		HTTPClient: httpClient,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	auth := api.NewAuthService(platform)
	sessions := session.NewManager(session.ManagerConfig{
		Store:  store,
		Auth:   auth,
		Clock:  clock.Real(),
		Logger: logger,
	})

	return &appContext{
		config:   cfg,
		store:    store,
		sessions: sessions,
		auth:     auth,
		events:   api.NewEventService(platform),
		tickets:  api.NewTicketService(platform),
		venues:   api.NewVenueService(platform),
		users:    api.NewUserService(platform),
		payments: api.NewPaymentService(paymentClient),
		logger:   logger,
		clock:    clock.Real(),
	}, nil
}

// requireGuard evaluates a navigation guard against the session and
// converts a refusal into a CLI error. The login redirect becomes a
// pointer at the login command; the home redirect becomes a permission
// error, since re-authenticating would not help.
func (app *appContext) requireGuard(g guard.Guard) error {
	decision := g.Check(app.sessions)
	if decision.Allowed {
		return nil
	}
	if decision.Redirect == guard.LoginRoute {
		return fmt.Errorf("not logged in; run 'reservations login' first")
	}
	return fmt.Errorf("%s", api.MessageForbidden)
}
