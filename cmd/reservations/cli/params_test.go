// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"
	"time"
)

func TestBindFlagsPopulatesFields(t *testing.T) {
	type params struct {
		JSONOutput
		Email   string        `flag:"email,e" desc:"account email"`
		Limit   int           `flag:"limit" default:"20" desc:"page size"`
		Timeout time.Duration `flag:"timeout" default:"30s" desc:"request timeout"`
		Tags    []string      `flag:"tag" desc:"filter tags"`
		Skipped string
	}

	var p params
	flagSet := FlagsFromParams("test", &p)
	err := flagSet.Parse([]string{
		"-e", "jan@example.com",
		"--timeout", "5s",
		"--tag", "music", "--tag", "live",
		"--json",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Email != "jan@example.com" {
		t.Fatalf("Email = %q", p.Email)
	}
	if p.Limit != 20 {
		t.Fatalf("Limit = %d, want the default 20", p.Limit)
	}
	if p.Timeout != 5*time.Second {
		t.Fatalf("Timeout = %s", p.Timeout)
	}
	if len(p.Tags) != 2 || p.Tags[0] != "music" || p.Tags[1] != "live" {
		t.Fatalf("Tags = %v", p.Tags)
	}
	if !p.OutputJSON {
		t.Fatal("--json did not set the embedded JSONOutput field")
	}
	if flagSet.Lookup("Skipped") != nil {
		t.Fatal("untagged field got a flag")
	}
}

func TestBindFlagsRejectsNonStruct(t *testing.T) {
	var s string
	flagSet := FlagsFromParams("test", &struct{}{})
	if err := BindFlags(&s, flagSet); err == nil {
		t.Fatal("BindFlags accepted a non-struct pointer")
	}
	if err := BindFlags(struct{}{}, flagSet); err == nil {
		t.Fatal("BindFlags accepted a non-pointer")
	}
}

func TestBindFlagsBadDefault(t *testing.T) {
	type params struct {
		Limit int `flag:"limit" default:"not-a-number"`
	}
	var p params
	flagSet := FlagsFromParams("test", &struct{}{})
	if err := BindFlags(&p, flagSet); err == nil {
		t.Fatal("BindFlags accepted an unparseable default")
	}
}
