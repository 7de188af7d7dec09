// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

// Package session owns the client's authentication state.
//
// A [Store] persists exactly two entries under a well-known directory:
// the bearer token and the serialized user record. Both are cleared
// together on logout or invalidation. The token file is written 0600
// since it proves the user's identity.
//
// A [Manager] layers session semantics on top: it logs in and
// registers through the auth endpoints, decodes the returned JWT's
// claims to synthesize the current user, answers authentication and
// role-membership queries, and publishes the current user on a
// subscription stream whenever the session changes (login publishes
// the user, logout publishes nil).
//
// Token decoding is unverified — the client holds no key material and
// trusts the server that issued the token. A token that fails to
// decode is treated as "unauthenticated", never surfaced as an error.
package session
