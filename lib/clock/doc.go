// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for testability.
//
// Production code accepts a Clock parameter instead of calling time.Now,
// time.After, time.NewTicker, or time.Sleep directly. Real() provides the
// standard library behavior; Fake() provides a deterministic clock that
// advances only when Advance is called, so token expiry checks and
// payment countdown computations can be tested against a pinned wall
// clock.
package clock
