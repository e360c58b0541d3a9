// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package takeargs

import (
	"os"
	"strings"
)

// FlagSpec describes a named argument without a value.
type FlagSpec struct {
	// Long is matched as "--<Long>". An empty Long matches a lone "--".
	Long  string
	Short rune
	Doc   string
	// Env names an environment variable; a non-empty value counts as the
	// flag being set when no token matched.
	Env string

	MinIndex int
	MaxIndex int
}

// Well-known flags.
var (
	HelpFlag       = FlagSpec{Long: "help", Short: 'h', Doc: "Print help ('--help' for full help, '-h' for summary)"}
	VersionFlag    = FlagSpec{Long: "version", Doc: "Print version"}
	OptionsEndFlag = FlagSpec{Doc: "Treat all following arguments as positional"}
)

// NewFlag returns a FlagSpec with the given long name.
func NewFlag(long string) FlagSpec {
	return FlagSpec{Long: long}
}

// Take consumes the first token in range that matches the flag. A short
// flag inside a cluster like "-abc" only removes its own character.
func (s FlagSpec) Take(a *RawArgs) Flag {
	f := s.take(a)
	a.record(f)
	return f
}

// TakeHelp is Take for the application's help flag: when present, it puts
// the store into help mode, with full help for the long form.
func (s FlagSpec) TakeHelp(a *RawArgs) Flag {
	f := s.Take(a)
	if f.IsPresent() {
		a.metadata.HelpMode = true
		a.metadata.HelpFlagName = s.Long
		a.metadata.FullHelp = f.source == SourceLong
	}
	return f
}

func (s FlagSpec) take(a *RawArgs) Flag {
	if a.metadata.HelpMode {
		return Flag{spec: s}
	}
	for i, raw := range a.namedSlots(s.MinIndex, s.MaxIndex) {
		if !raw.Present || !strings.HasPrefix(raw.Value, "-") {
			continue
		}
		if strings.HasPrefix(raw.Value, "--") {
			if raw.Value[2:] != s.Long {
				continue
			}
			raw.Present = false
			if s.Long == "" {
				a.optionsEnd = i
			}
			return Flag{spec: s, source: SourceLong, index: i}
		}
		if s.Short == 0 {
			continue
		}
		cluster := raw.Value[1:]
		pos := strings.IndexRune(cluster, s.Short)
		if pos < 0 || !a.metadata.validFlagChars(cluster) {
			continue
		}
		cluster = cluster[:pos] + cluster[pos+len(string(s.Short)):]
		if cluster == "" {
			raw.Present = false
		} else {
			raw.Value = "-" + cluster
		}
		return Flag{spec: s, source: SourceShort, index: i}
	}
	if s.Env != "" && os.Getenv(s.Env) != "" {
		return Flag{spec: s, source: SourceEnv}
	}
	return Flag{spec: s}
}

// Flag is the result of FlagSpec.Take.
type Flag struct {
	spec   FlagSpec
	source Source
	index  int
}

// Spec returns the spec this result was taken with.
func (f Flag) Spec() FlagSpec { return f.spec }

// Source reports how the flag was set.
func (f Flag) Source() Source { return f.source }

func (f Flag) IsPresent() bool { return f.source != SourceNone }

func (f Flag) Index() (int, bool) {
	if f.source.live() {
		return f.index, true
	}
	return 0, false
}

// Present returns f and true if the flag was set.
func (f Flag) Present() (Flag, bool) {
	return f, f.IsPresent()
}

func (f Flag) takenSpec() any { return f.spec }
