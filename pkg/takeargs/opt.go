// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package takeargs

import (
	"os"
	"strings"
)

const defaultOptType = "VALUE"

// OptSpec describes a named argument that carries a value.
type OptSpec struct {
	Long  string
	Short rune
	// Type labels the value in help output, e.g. "INTEGER". Empty renders
	// as "VALUE".
	Type string
	Doc  string
	Env  string

	Default string
	// Example marks the option as required in help output and is used for
	// the example invocation.
	Example string

	MinIndex int
	MaxIndex int
}

// NewOpt returns an OptSpec with the given long name.
func NewOpt(long string) OptSpec {
	return OptSpec{Long: long, Type: defaultOptType}
}

func (s OptSpec) typeLabel() string {
	if s.Type == "" {
		return defaultOptType
	}
	return s.Type
}

// Take consumes the first occurrence of the option and its value. The
// value may be given as "--name=value", "--name value", "-x value",
// "-x=value" or "-xvalue".
func (s OptSpec) Take(a *RawArgs) Opt {
	o := s.take(a)
	o.helpFlag, o.helpMode = a.metadata.HelpFlagName, a.metadata.HelpMode
	a.record(o)
	return o
}

type optState int

const (
	optScanning optState = iota
	optValuePending
)

func (s OptSpec) take(a *RawArgs) Opt {
	if a.metadata.HelpMode {
		switch {
		case a.logged(s):
		case s.Default != "":
			return Opt{spec: s, source: SourceDefault, value: s.Default}
		case s.Example != "":
			return Opt{spec: s, source: SourceExample, value: s.Example}
		}
		return Opt{spec: s}
	}

	state := optScanning
	pending := Opt{spec: s}
	for i, raw := range a.namedSlots(s.MinIndex, s.MaxIndex) {
		switch state {
		case optValuePending:
			if !raw.Present {
				pending.source = SourceMissingValue
				return pending
			}
			raw.Present = false
			pending.value = raw.Value
			return pending
		case optScanning:
			if !raw.Present {
				continue
			}
			form, rest, ok := s.matchName(raw.Value)
			if !ok {
				continue
			}
			raw.Present = false
			pending = Opt{spec: s, source: form, form: form, index: i}
			switch {
			case rest == "":
				state = optValuePending
				continue
			case rest[0] == '=':
				pending.value = rest[1:]
			default:
				pending.value = rest
			}
			return pending
		}
	}
	if state == optValuePending {
		pending.source = SourceMissingValue
		return pending
	}

	if s.Env != "" {
		if v := os.Getenv(s.Env); v != "" {
			return Opt{spec: s, source: SourceEnv, value: v}
		}
	}
	if s.Default != "" {
		return Opt{spec: s, source: SourceDefault, value: s.Default}
	}
	return Opt{spec: s}
}

// matchName reports whether token starts with the option's long or short
// name and returns what follows the name. For long names only "" and
// "=value" remainders match; short names also accept a concatenated value.
func (s OptSpec) matchName(token string) (Source, string, bool) {
	if strings.HasPrefix(token, "--") {
		rest, ok := strings.CutPrefix(token[2:], s.Long)
		if !ok || s.Long == "" || (rest != "" && rest[0] != '=') {
			return SourceNone, "", false
		}
		return SourceLong, rest, true
	}
	if s.Short == 0 {
		return SourceNone, "", false
	}
	rest, ok := strings.CutPrefix(token, "-"+string(s.Short))
	if !ok {
		return SourceNone, "", false
	}
	return SourceShort, rest, true
}

// Opt is the result of OptSpec.Take.
type Opt struct {
	spec   OptSpec
	source Source
	// form is SourceLong or SourceShort when the name was matched, and
	// survives the switch to SourceMissingValue.
	form  Source
	index int
	value string

	helpFlag string
	helpMode bool
}

// Spec returns the spec this result was taken with.
func (o Opt) Spec() OptSpec { return o.spec }

// Source reports where the value came from.
func (o Opt) Source() Source { return o.source }

// Value returns the resolved text; empty when absent or missing.
func (o Opt) Value() string { return o.value }

// IsPresent reports whether the option was named on the command line or
// resolved from a fallback, even if its value turned out to be missing.
func (o Opt) IsPresent() bool { return o.source != SourceNone }

// IsValuePresent reports whether a value was resolved.
func (o Opt) IsValuePresent() bool {
	return o.source != SourceNone && o.source != SourceMissingValue
}

func (o Opt) Index() (int, bool) {
	if o.source.live() || o.source == SourceMissingValue {
		return o.index, true
	}
	return 0, false
}

// Present returns o and true if a value was resolved.
func (o Opt) Present() (Opt, bool) {
	return o, o.IsValuePresent()
}

// MatchedName returns the name as written for live results: "--long" or
// "-s". Other sources report the long form.
func (o Opt) MatchedName() string {
	return o.spec.displayName(o.form == SourceShort)
}

func (s OptSpec) displayName(short bool) string {
	if short || (s.Long == "" && s.Short != 0) {
		return "-" + string(s.Short)
	}
	return "--" + s.Long
}

func (o Opt) takenSpec() any { return o.spec }
