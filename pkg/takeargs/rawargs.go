// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package takeargs

import (
	"fmt"
	"iter"
	"path/filepath"

	"github.com/google/shlex"
)

// CommandPosition controls where CmdSpec.Take may find a subcommand.
type CommandPosition int

const (
	// CommandNext only accepts the next live token in the spec's range.
	CommandNext CommandPosition = iota
	// CommandAnywhere accepts any live token in the spec's range.
	CommandAnywhere
)

// Metadata holds the application-level settings consulted by take calls and
// by the help renderer.
type Metadata struct {
	AppName        string
	AppDescription string

	// HelpFlagName is the long name of the help flag used in the
	// "Try '--help'" hint. Empty disables the hint.
	HelpFlagName string

	// HelpMode makes Arg, Flag and Opt takes resolve from declared
	// defaults and examples instead of the command line.
	HelpMode bool

	// FullHelp selects the multi-line help layout.
	FullHelp bool

	CommandPosition CommandPosition

	// IsValidFlagChars reports whether the characters following a single
	// dash may be read as a cluster of short flags. Nil means all ASCII
	// letters.
	IsValidFlagChars func(cluster string) bool
}

func (m *Metadata) validFlagChars(cluster string) bool {
	if m.IsValidFlagChars != nil {
		return m.IsValidFlagChars(cluster)
	}
	if cluster == "" {
		return false
	}
	for i := 0; i < len(cluster); i++ {
		c := cluster[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// RawArg is one process argument slot. A consumed slot has Present false
// and is never matched again.
type RawArg struct {
	Value   string
	Present bool
}

// RawArgs is the mutable token store. Take calls consume its slots in place;
// slot indices never change, so they equal the original argv positions.
type RawArgs struct {
	raw      []RawArg
	metadata Metadata
	log      []Taken
	styler   Styler

	// optionsEnd is the index of a taken "--" marker, or -1.
	optionsEnd int
}

// New returns a store for argv. argv[0] is the program path: it names the
// application and its slot starts out consumed.
func New(argv []string) *RawArgs {
	a := &RawArgs{
		raw:        make([]RawArg, len(argv)),
		optionsEnd: -1,
		metadata: Metadata{
			HelpFlagName: HelpFlag.Long,
		},
	}
	for i, v := range argv {
		a.raw[i] = RawArg{Value: v, Present: i != 0}
	}
	if len(argv) > 0 {
		a.metadata.AppName = filepath.Base(argv[0])
	}
	return a
}

// NewFromString splits a shell-style command line and returns a store for
// the resulting words. The first word is the program.
func NewFromString(line string) (*RawArgs, error) {
	argv, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("failed to split command line: %w", err)
	}
	return New(argv), nil
}

// Metadata returns the store's metadata for reading and updating.
func (a *RawArgs) Metadata() *Metadata {
	return &a.metadata
}

// SetStyler sets the styler used by Finish when rendering help.
func (a *RawArgs) SetStyler(s Styler) {
	a.styler = s
}

// Len returns the number of slots, consumed ones included.
func (a *RawArgs) Len() int {
	return len(a.raw)
}

// Remaining yields the index and text of every live slot in ascending order.
func (a *RawArgs) Remaining() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, r := range a.raw {
			if !r.Present {
				continue
			}
			if !yield(i, r.Value) {
				return
			}
		}
	}
}

// NextRemaining returns the first live slot's text.
func (a *RawArgs) NextRemaining() (string, bool) {
	for _, v := range a.Remaining() {
		return v, true
	}
	return "", false
}

// Log returns a copy of the extraction log in call order.
func (a *RawArgs) Log() []Taken {
	return append([]Taken(nil), a.log...)
}

func (a *RawArgs) record(t Taken) {
	a.log = append(a.log, t)
}

// slots yields (index, slot) pairs for lo <= index <= hi in ascending
// order. A hi of zero or less means no upper bound.
func (a *RawArgs) slots(lo, hi int) iter.Seq2[int, *RawArg] {
	return func(yield func(int, *RawArg) bool) {
		end := len(a.raw) - 1
		if hi > 0 && hi < end {
			end = hi
		}
		for i := max(lo, 0); i <= end; i++ {
			if !yield(i, &a.raw[i]) {
				return
			}
		}
	}
}

// namedSlots is like slots but stops before a taken "--" marker. Flag,
// option and subcommand scans use it.
func (a *RawArgs) namedSlots(lo, hi int) iter.Seq2[int, *RawArg] {
	if a.optionsEnd >= 0 && (hi <= 0 || hi >= a.optionsEnd) {
		hi = a.optionsEnd - 1
		if hi <= 0 || hi < lo {
			return func(func(int, *RawArg) bool) {}
		}
	}
	return a.slots(lo, hi)
}

// logged reports whether spec already has a log entry.
func (a *RawArgs) logged(spec any) bool {
	for _, t := range a.log {
		if t.takenSpec() == spec {
			return true
		}
	}
	return false
}
