// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"events", "events", 0},
		{"evnets", "events", 2},
		{"ticket", "tickets", 1},
		{"pay", "venues", 6},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSuggestCommandThreshold(t *testing.T) {
	commands := []*Command{{Name: "events"}, {Name: "tickets"}, {Name: "venues"}}

	if got := suggestCommand("evnets", commands); got != "events" {
		t.Fatalf("suggestCommand = %q, want events", got)
	}
	if got := suggestCommand("zzzzzzzz", commands); got != "" {
		t.Fatalf("suggestCommand = %q, want no suggestion", got)
	}
}
