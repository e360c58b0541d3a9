// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package takeargs

// ArgSpec describes a positional argument. Positional specs match any live
// token, so declaration order decides which token each spec gets.
type ArgSpec struct {
	Name    string
	Doc     string
	Default string
	// Example marks the argument as required in help output and is used
	// for the example invocation.
	Example string

	// MinIndex and MaxIndex bound the slots the spec may take from,
	// inclusive. Zero means unbounded.
	MinIndex int
	MaxIndex int
}

// NewArg returns an ArgSpec with the given display name.
func NewArg(name string) ArgSpec {
	return ArgSpec{Name: name}
}

// Take consumes the first live token in range. Calling Take repeatedly with
// the same spec walks forward through the store until it returns absent.
func (s ArgSpec) Take(a *RawArgs) Arg {
	arg := s.take(a)
	arg.helpFlag, arg.helpMode = a.metadata.HelpFlagName, a.metadata.HelpMode
	a.record(arg)
	return arg
}

func (s ArgSpec) take(a *RawArgs) Arg {
	if a.metadata.HelpMode {
		switch {
		case a.logged(s):
		case s.Default != "":
			return Arg{spec: s, source: SourceDefault, value: s.Default}
		case s.Example != "":
			return Arg{spec: s, source: SourceExample, value: s.Example}
		}
		return Arg{spec: s}
	}
	for i, raw := range a.slots(s.MinIndex, s.MaxIndex) {
		if !raw.Present {
			continue
		}
		raw.Present = false
		return Arg{spec: s, source: SourcePositional, index: i, value: raw.Value}
	}
	if s.Default != "" {
		return Arg{spec: s, source: SourceDefault, value: s.Default}
	}
	return Arg{spec: s}
}

// Arg is the result of ArgSpec.Take.
type Arg struct {
	spec   ArgSpec
	source Source
	index  int
	value  string

	helpFlag string
	helpMode bool
}

// Spec returns the spec this result was taken with.
func (a Arg) Spec() ArgSpec { return a.spec }

// Source reports where the value came from.
func (a Arg) Source() Source { return a.source }

// Value returns the resolved text; empty when absent.
func (a Arg) Value() string { return a.value }

func (a Arg) IsPresent() bool { return a.source != SourceNone }

func (a Arg) Index() (int, bool) {
	if a.source.live() {
		return a.index, true
	}
	return 0, false
}

// Present returns a and true if a resolved to a value.
func (a Arg) Present() (Arg, bool) {
	return a, a.IsPresent()
}

func (a Arg) takenSpec() any { return a.spec }
