// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package takeargs

import (
	"reflect"
	"testing"
)

func TestArgWalksForward(t *testing.T) {
	a := testArgs("prog", "a", "b")
	spec := NewArg("ITEM")

	var got []string
	for {
		arg := spec.Take(a)
		if !arg.IsPresent() {
			break
		}
		if arg.Source() != SourcePositional {
			t.Fatalf("Source() = %v, want %v", arg.Source(), SourcePositional)
		}
		got = append(got, arg.Value())
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("values = %#v, want %#v", got, want)
	}
}

func TestArgTakesAnyToken(t *testing.T) {
	a := testArgs("prog", "--not-a-flag")
	arg := NewArg("X").Take(a)
	if arg.Value() != "--not-a-flag" {
		t.Fatalf("Value() = %q, want %q", arg.Value(), "--not-a-flag")
	}
}

func TestArgDefault(t *testing.T) {
	a := testArgs("prog")
	spec := ArgSpec{Name: "N", Default: "3"}

	for i := 0; i < 3; i++ {
		arg := spec.Take(a)
		if arg.Source() != SourceDefault || arg.Value() != "3" {
			t.Fatalf("take %d = (%v, %q), want (%v, %q)", i, arg.Source(), arg.Value(), SourceDefault, "3")
		}
		if _, ok := arg.Index(); ok {
			t.Fatalf("take %d reported an index for a default", i)
		}
	}
}

func TestArgExampleIgnoredOutsideHelp(t *testing.T) {
	a := testArgs("prog")
	arg := ArgSpec{Name: "N", Example: "7"}.Take(a)
	if arg.IsPresent() {
		t.Fatalf("IsPresent() = true, want false (source %v)", arg.Source())
	}
	if _, ok := arg.Present(); ok {
		t.Fatalf("Present() ok = true, want false")
	}
}

func TestArgIndexRange(t *testing.T) {
	a := testArgs("prog", "a", "b", "c")
	spec := ArgSpec{Name: "MID", MinIndex: 2, MaxIndex: 2}

	if got := spec.Take(a); got.Value() != "b" {
		t.Fatalf("first take = %q, want %q", got.Value(), "b")
	}
	if got := spec.Take(a); got.IsPresent() {
		t.Fatalf("second take = %q, want absent", got.Value())
	}
}

func TestArgHelpMode(t *testing.T) {
	a := testArgs("prog", "live")
	a.Metadata().HelpMode = true

	tests := []struct {
		spec  ArgSpec
		src   Source
		value string
	}{
		{ArgSpec{Name: "D", Default: "1", Example: "2"}, SourceDefault, "1"},
		{ArgSpec{Name: "E", Example: "2"}, SourceExample, "2"},
		{ArgSpec{Name: "N"}, SourceNone, ""},
	}
	for _, tt := range tests {
		arg := tt.spec.Take(a)
		if arg.Source() != tt.src || arg.Value() != tt.value {
			t.Fatalf("%s = (%v, %q), want (%v, %q)", tt.spec.Name, arg.Source(), arg.Value(), tt.src, tt.value)
		}
	}

	again := ArgSpec{Name: "E", Example: "2"}.Take(a)
	if again.IsPresent() {
		t.Fatalf("repeated help-mode take = %v, want absent", again.Source())
	}
	if v, ok := a.NextRemaining(); !ok || v != "live" {
		t.Fatalf("NextRemaining() = (%q, %v), want (%q, true)", v, ok, "live")
	}
}
