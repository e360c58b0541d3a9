// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package takeargs

import "testing"

func TestCmdThenScopedFlag(t *testing.T) {
	a := testArgs("prog", "run", "--foo")

	run := NewCmd("run").Take(a)
	i, ok := run.Index()
	if !ok || i != 1 {
		t.Fatalf("run index = (%d, %v), want (1, true)", i, ok)
	}
	f := FlagSpec{Long: "foo", MinIndex: i}.Take(a)
	if j, ok := f.Index(); !ok || j != 2 {
		t.Fatalf("foo index = (%d, %v), want (2, true)", j, ok)
	}
}

func TestCmdMinIndexHidesEarlierTokens(t *testing.T) {
	a := testArgs("prog", "--foo", "run")
	a.Metadata().CommandPosition = CommandAnywhere

	run := NewCmd("run").Take(a)
	i, _ := run.Index()
	if f := (FlagSpec{Long: "foo", MinIndex: i}).Take(a); f.IsPresent() {
		t.Fatalf("foo before the command was taken")
	}
}

func TestCmdNextPosition(t *testing.T) {
	a := testArgs("prog", "--foo", "run")
	if c := NewCmd("run").Take(a); c.IsPresent() {
		t.Fatalf("run found behind --foo with CommandNext")
	}

	NewFlag("foo").Take(a)
	c := NewCmd("run").Take(a)
	if i, ok := c.Index(); !ok || i != 2 {
		t.Fatalf("run index = (%d, %v), want (2, true)", i, ok)
	}
}

func TestCmdAnywhere(t *testing.T) {
	a := testArgs("prog", "--foo", "run")
	a.Metadata().CommandPosition = CommandAnywhere
	c := NewCmd("run").Take(a)
	if i, ok := c.Index(); !ok || i != 2 {
		t.Fatalf("run index = (%d, %v), want (2, true)", i, ok)
	}
}

func TestCmdConsumed(t *testing.T) {
	a := testArgs("prog", "run")
	if c := NewCmd("run").Take(a); !c.IsPresent() {
		t.Fatalf("first take = absent, want present")
	}
	if c := NewCmd("run").Take(a); c.IsPresent() {
		t.Fatalf("second take = present, want absent")
	}
}

func TestCmdNested(t *testing.T) {
	a := testArgs("prog", "env", "set", "web")
	env := NewCmd("env").Take(a)
	i, _ := env.Index()
	set := CmdSpec{Name: "set", MinIndex: i}.Take(a)
	if j, ok := set.Index(); !ok || j != 2 {
		t.Fatalf("set index = (%d, %v), want (2, true)", j, ok)
	}
	if c, ok := set.Present(); !ok || c.Spec().Name != "set" {
		t.Fatalf("Present() = (%q, %v), want (%q, true)", c.Spec().Name, ok, "set")
	}
}

func TestCmdMatchesInHelpMode(t *testing.T) {
	a := testArgs("prog", "logs", "--help")
	HelpFlag.TakeHelp(a)
	if c := NewCmd("logs").Take(a); !c.IsPresent() {
		t.Fatalf("logs not matched in help mode")
	}
}

func TestCmdStopsAtOptionsEnd(t *testing.T) {
	a := testArgs("prog", "--", "run")
	OptionsEndFlag.Take(a)
	if c := NewCmd("run").Take(a); c.IsPresent() {
		t.Fatalf("run after -- matched as a command")
	}
	if arg := NewArg("ARG").Take(a); arg.Value() != "run" {
		t.Fatalf("positional = %q, want %q", arg.Value(), "run")
	}
}
