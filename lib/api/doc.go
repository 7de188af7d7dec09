// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is the HTTP client for the ticketing platform's REST API.
//
// All business logic lives server-side; this package is transport and
// normalization only. A [Client] holds a base URL, an injectable
// *http.Client, and a [TokenSource] that supplies the bearer token for
// each request. Domain services ([EventService], [TicketService],
// [VenueService], [UserService], [PaymentService], [AuthService]) are
// stateless request/response wrappers over a Client.
//
// Every failed request surfaces as a *[Error] carrying a single
// human-readable message computed at this boundary — callers never see
// raw transport detail. A 401 from a non-auth endpoint additionally
// sets [Error].SessionExpired so the owning view can force a logout
// and return to the login screen; the same status from /auth/login or
// /auth/register is ordinary invalid-credentials feedback.
//
// The payments API is served from a distinct host/port than the other
// resources, so [PaymentService] wraps its own Client.
package api
