// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

// Package countdown computes the remaining payment window for a
// reserved ticket. The server reports the deadline as an ISO-8601
// timestamp that may lack a timezone designator; such timestamps are
// interpreted as UTC so that every client, whatever its local zone,
// agrees on when the window closes.
package countdown

import (
	"fmt"
	"strings"
	"time"
)

// layouts accepted for deadlines carrying no timezone designator.
// The server emits seconds with optional fractional digits.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Remaining is one tick of a payment countdown.
type Remaining struct {
	// Minutes and Seconds are the display components of the time left,
	// both zero once the window has closed.
	Minutes int
	Seconds int
	// Expired is true when the deadline is at or before now.
	Expired bool
}

func (r Remaining) String() string {
	return fmt.Sprintf("%02d:%02d", r.Minutes, r.Seconds)
}

// Parse interprets an ISO-8601 deadline. A timestamp with an explicit
// offset or a trailing Z is honored as written; one without any
// timezone designator is taken as UTC.
func Parse(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty deadline")
	}
	if hasTimezone(value) {
		t, err := time.Parse(time.RFC3339Nano, value)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing deadline %q: %w", value, err)
		}
		return t, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing deadline %q: unrecognized timestamp", value)
}

// hasTimezone reports whether the timestamp carries an explicit
// timezone designator. A "-" only counts when it appears after the
// time portion; the date itself contains two.
func hasTimezone(value string) bool {
	if strings.HasSuffix(value, "Z") || strings.HasSuffix(value, "z") {
		return true
	}
	timeStart := strings.IndexAny(value, "T ")
	if timeStart < 0 {
		return false
	}
	rest := value[timeStart+1:]
	return strings.ContainsAny(rest, "+-")
}

// Until computes the time left before deadline as of now. Once the
// deadline passes, the result pins to zero with Expired set; it never
// goes negative.
func Until(deadline, now time.Time) Remaining {
	left := deadline.Sub(now)
	if left <= 0 {
		return Remaining{Expired: true}
	}
	seconds := int(left / time.Second)
	return Remaining{
		Minutes: seconds / 60,
		Seconds: seconds % 60,
	}
}

// ForTicket parses the deadline and computes the remainder in one
// step. An unparseable deadline reports as already expired rather than
// leaving a reservation that can never be paid stuck on screen.
func ForTicket(deadline string, now time.Time) Remaining {
	t, err := Parse(deadline)
	if err != nil {
		return Remaining{Expired: true}
	}
	return Until(t, now)
}
