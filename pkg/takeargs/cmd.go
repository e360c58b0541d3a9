// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package takeargs

// CmdSpec describes a subcommand.
type CmdSpec struct {
	Name string
	Doc  string

	MinIndex int
	MaxIndex int
}

// NewCmd returns a CmdSpec with the given name.
func NewCmd(name string) CmdSpec {
	return CmdSpec{Name: name}
}

// Take consumes a token equal to the command name. Under CommandNext only
// the first live token in range is considered. Commands are matched in help
// mode too so that help can be scoped to the selected command.
//
// Specs declared for the command's own arguments usually set MinIndex to
// the returned index so they cannot reach tokens before the command name.
func (s CmdSpec) Take(a *RawArgs) Cmd {
	c := s.take(a)
	a.record(c)
	return c
}

func (s CmdSpec) take(a *RawArgs) Cmd {
	for i, raw := range a.namedSlots(s.MinIndex, s.MaxIndex) {
		if !raw.Present {
			continue
		}
		if raw.Value == s.Name {
			raw.Present = false
			return Cmd{spec: s, present: true, index: i}
		}
		if a.metadata.CommandPosition == CommandNext {
			break
		}
	}
	return Cmd{spec: s}
}

// Cmd is the result of CmdSpec.Take.
type Cmd struct {
	spec    CmdSpec
	present bool
	index   int
}

// Spec returns the spec this result was taken with.
func (c Cmd) Spec() CmdSpec { return c.spec }

func (c Cmd) IsPresent() bool { return c.present }

func (c Cmd) Index() (int, bool) {
	return c.index, c.present
}

// Present returns c and true if the command matched.
func (c Cmd) Present() (Cmd, bool) {
	return c, c.present
}

func (c Cmd) takenSpec() any { return c.spec }
