// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package takeargs

// Source says how a take call resolved its value.
type Source int

const (
	// SourceNone means nothing matched and no fallback applied.
	SourceNone Source = iota
	// SourcePositional is a live token taken by an ArgSpec.
	SourcePositional
	// SourceLong is a live token matched by its long name.
	SourceLong
	// SourceShort is a live token matched by its short name.
	SourceShort
	// SourceEnv is a non-empty environment variable.
	SourceEnv
	// SourceDefault is the spec's declared default.
	SourceDefault
	// SourceExample is the spec's declared example (help mode only).
	SourceExample
	// SourceMissingValue is an option name whose value token was missing.
	SourceMissingValue
)

var sourceNames = [...]string{
	SourceNone:         "none",
	SourcePositional:   "positional",
	SourceLong:         "long",
	SourceShort:        "short",
	SourceEnv:          "env",
	SourceDefault:      "default",
	SourceExample:      "example",
	SourceMissingValue: "missing-value",
}

func (s Source) String() string {
	if s < 0 || int(s) >= len(sourceNames) {
		return "unknown"
	}
	return sourceNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// live reports whether the source is a token from the command line.
func (s Source) live() bool {
	return s == SourcePositional || s == SourceLong || s == SourceShort
}

// Taken is one extraction log entry. It is implemented by Arg, Flag, Opt
// and Cmd only.
type Taken interface {
	// IsPresent reports whether the take resolved to anything.
	IsPresent() bool
	// Index returns the slot the value came from, if it came from one.
	Index() (int, bool)

	takenSpec() any
}

var (
	_ Taken = Arg{}
	_ Taken = Flag{}
	_ Taken = Opt{}
	_ Taken = Cmd{}
)

// Styler decorates text for display. The core only ever asks for bold and
// underline; terminal detection belongs to the implementation.
type Styler interface {
	Bold(text string) string
	Underline(text string) string
}

// PlainStyler returns text unchanged.
type PlainStyler struct{}

func (PlainStyler) Bold(text string) string      { return text }
func (PlainStyler) Underline(text string) string { return text }

func styleOrPlain(s Styler) Styler {
	if s == nil {
		return PlainStyler{}
	}
	return s
}
