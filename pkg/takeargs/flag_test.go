// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package takeargs

import (
	"strings"
	"testing"
)

func TestFlagLong(t *testing.T) {
	a := testArgs("prog", "web", "--pull")
	spec := NewFlag("pull")

	f := spec.Take(a)
	if i, ok := f.Index(); f.Source() != SourceLong || !ok || i != 2 {
		t.Fatalf("first take = (%v, %d, %v), want (%v, 2, true)", f.Source(), i, ok, SourceLong)
	}
	if f := spec.Take(a); f.IsPresent() {
		t.Fatalf("second take = %v, want absent", f.Source())
	}
}

func TestFlagLongIsExact(t *testing.T) {
	a := testArgs("prog", "--pulled", "--pull=yes")
	if f := NewFlag("pull").Take(a); f.IsPresent() {
		t.Fatalf("take = %v, want absent", f.Source())
	}
}

func TestFlagShortCluster(t *testing.T) {
	for _, order := range []string{"bf", "fb"} {
		t.Run(order, func(t *testing.T) {
			a := testArgs("prog", "-bf")
			specs := map[rune]FlagSpec{
				'b': {Long: "bar", Short: 'b'},
				'f': {Long: "foo", Short: 'f'},
			}
			for _, c := range order {
				f := specs[c].Take(a)
				if i, ok := f.Index(); f.Source() != SourceShort || !ok || i != 1 {
					t.Fatalf("take %c = (%v, %d, %v), want (%v, 1, true)", c, f.Source(), i, ok, SourceShort)
				}
			}
			for _, c := range order {
				if f := specs[c].Take(a); f.IsPresent() {
					t.Fatalf("third take of %c = %v, want absent", c, f.Source())
				}
			}
			if v, ok := a.NextRemaining(); ok {
				t.Fatalf("NextRemaining() = %q, want none", v)
			}
		})
	}
}

func TestFlagShortClusterPartial(t *testing.T) {
	a := testArgs("prog", "-abc")
	FlagSpec{Long: "bee", Short: 'b'}.Take(a)
	if v, _ := a.NextRemaining(); v != "-ac" {
		t.Fatalf("NextRemaining() = %q, want %q", v, "-ac")
	}
}

func TestFlagShortRejectsNonLetters(t *testing.T) {
	a := testArgs("prog", "-n10")
	if f := (FlagSpec{Long: "num", Short: 'n'}).Take(a); f.IsPresent() {
		t.Fatalf("take = %v, want absent", f.Source())
	}

	a = testArgs("prog", "-n10")
	a.Metadata().IsValidFlagChars = func(cluster string) bool {
		return !strings.ContainsAny(cluster, "-=")
	}
	if f := (FlagSpec{Long: "num", Short: 'n'}).Take(a); !f.IsPresent() {
		t.Fatalf("take with custom predicate = absent, want present")
	}
	if v, _ := a.NextRemaining(); v != "-10" {
		t.Fatalf("NextRemaining() = %q, want %q", v, "-10")
	}
}

func TestFlagEnv(t *testing.T) {
	t.Setenv("TAKEARGS_TEST_VERBOSE", "1")
	t.Setenv("TAKEARGS_TEST_EMPTY", "")

	a := testArgs("prog")
	f := FlagSpec{Long: "verbose", Env: "TAKEARGS_TEST_VERBOSE"}.Take(a)
	if f.Source() != SourceEnv {
		t.Fatalf("Source() = %v, want %v", f.Source(), SourceEnv)
	}
	if _, ok := f.Index(); ok {
		t.Fatalf("env flag reported an index")
	}
	if f := (FlagSpec{Long: "quiet", Env: "TAKEARGS_TEST_EMPTY"}).Take(a); f.IsPresent() {
		t.Fatalf("empty env var counted as set")
	}
}

func TestFlagLiveBeatsEnv(t *testing.T) {
	t.Setenv("TAKEARGS_TEST_VERBOSE", "1")
	a := testArgs("prog", "--verbose")
	if f := (FlagSpec{Long: "verbose", Env: "TAKEARGS_TEST_VERBOSE"}).Take(a); f.Source() != SourceLong {
		t.Fatalf("Source() = %v, want %v", f.Source(), SourceLong)
	}
}

func TestOptionsEnd(t *testing.T) {
	a := testArgs("prog", "--pull", "--", "--pull")

	end := OptionsEndFlag.Take(a)
	if i, ok := end.Index(); !ok || i != 2 {
		t.Fatalf("OptionsEndFlag index = (%d, %v), want (2, true)", i, ok)
	}
	if f := NewFlag("pull").Take(a); f.Source() != SourceLong {
		t.Fatalf("first pull = %v, want %v", f.Source(), SourceLong)
	}
	if f := NewFlag("pull").Take(a); f.IsPresent() {
		t.Fatalf("pull after -- = present, want absent")
	}
	if arg := NewArg("ARGS").Take(a); arg.Value() != "--pull" {
		t.Fatalf("positional after -- = %q, want %q", arg.Value(), "--pull")
	}
}

func TestFlagHelpMode(t *testing.T) {
	a := testArgs("prog", "--pull")
	a.Metadata().HelpMode = true
	if f := NewFlag("pull").Take(a); f.IsPresent() {
		t.Fatalf("help-mode take = %v, want absent", f.Source())
	}
	if v, _ := a.NextRemaining(); v != "--pull" {
		t.Fatalf("NextRemaining() = %q, want %q", v, "--pull")
	}
}

func TestTakeHelp(t *testing.T) {
	tests := []struct {
		arg  string
		full bool
	}{
		{"--help", true},
		{"-h", false},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			a := testArgs("prog", "run", tt.arg)
			a.Metadata().HelpFlagName = ""
			if f := HelpFlag.TakeHelp(a); !f.IsPresent() {
				t.Fatalf("TakeHelp = absent, want present")
			}
			md := a.Metadata()
			if !md.HelpMode || md.FullHelp != tt.full || md.HelpFlagName != "help" {
				t.Fatalf("metadata = (help %v, full %v, name %q), want (true, %v, %q)", md.HelpMode, md.FullHelp, md.HelpFlagName, tt.full, "help")
			}
		})
	}

	a := testArgs("prog", "run")
	HelpFlag.TakeHelp(a)
	if a.Metadata().HelpMode {
		t.Fatalf("HelpMode set without a help flag")
	}
}
