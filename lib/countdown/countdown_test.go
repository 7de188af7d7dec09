// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package countdown

import (
	"testing"
	"time"
)

func TestParseNaiveTimestampIsUTC(t *testing.T) {
	got, err := Parse("2025-01-01T00:00:30")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := time.Date(2025, 1, 1, 0, 0, 30, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Parse = %v, want %v", got, want)
	}
}

func TestParseHonorsExplicitZone(t *testing.T) {
	tests := []struct {
		value string
		want  time.Time
	}{
		{"2025-01-01T00:00:30Z", time.Date(2025, 1, 1, 0, 0, 30, 0, time.UTC)},
		{"2025-01-01T02:00:30+02:00", time.Date(2025, 1, 1, 0, 0, 30, 0, time.UTC)},
		{"2024-12-31T19:00:30-05:00", time.Date(2025, 1, 1, 0, 0, 30, 0, time.UTC)},
		{"2025-01-01T00:00:30.500Z", time.Date(2025, 1, 1, 0, 0, 30, 500_000_000, time.UTC)},
	}
	for _, test := range tests {
		got, err := Parse(test.value)
		if err != nil {
			t.Fatalf("Parse(%q): %v", test.value, err)
		}
		if !got.Equal(test.want) {
			t.Fatalf("Parse(%q) = %v, want %v", test.value, got, test.want)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, value := range []string{"", "not a timestamp", "2025-13-40T99:99:99"} {
		if _, err := Parse(value); err == nil {
			t.Fatalf("Parse(%q) succeeded, want error", value)
		}
	}
}

func TestHasTimezoneNegativeOffset(t *testing.T) {
	// The date's own dashes must not look like an offset.
	if hasTimezone("2025-01-01T00:00:30") {
		t.Fatal("naive timestamp misread as zoned")
	}
	if !hasTimezone("2025-01-01T00:00:30-05:00") {
		t.Fatal("negative offset not detected")
	}
}

func TestUntilThirtySecondWindow(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	deadline, err := Parse("2025-01-01T00:00:30")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := Until(deadline, now)
	want := Remaining{Minutes: 0, Seconds: 30}
	if got != want {
		t.Fatalf("Until = %+v, want %+v", got, want)
	}

	// One second past the deadline: expired, pinned to zero.
	got = Until(deadline, deadline.Add(time.Second))
	want = Remaining{Expired: true}
	if got != want {
		t.Fatalf("Until past deadline = %+v, want %+v", got, want)
	}
}

func TestUntilExactlyAtDeadlineIsExpired(t *testing.T) {
	deadline := time.Date(2025, 1, 1, 0, 0, 30, 0, time.UTC)
	if got := Until(deadline, deadline); !got.Expired {
		t.Fatalf("Until at deadline = %+v, want expired", got)
	}
}

func TestUntilMinuteSplit(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	got := Until(now.Add(9*time.Minute+59*time.Second), now)
	want := Remaining{Minutes: 9, Seconds: 59}
	if got != want {
		t.Fatalf("Until = %+v, want %+v", got, want)
	}
	if got.String() != "09:59" {
		t.Fatalf("String = %q, want %q", got.String(), "09:59")
	}
}

func TestForTicketUnparseableExpires(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := ForTicket("garbage", now); !got.Expired {
		t.Fatalf("ForTicket(garbage) = %+v, want expired", got)
	}
}
