// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var isTerminalFn = term.IsTerminal

// Styler decorates help and error text. It satisfies takeargs.Styler.
type Styler struct {
	enabled bool

	bold      *color.Color
	underline *color.Color
	red       *color.Color
}

// NewStyler returns a Styler that emits escape codes only when enabled is
// set and the environment allows color: NO_COLOR unset and TERM neither
// empty nor "dumb".
func NewStyler(enabled bool) Styler {
	s := Styler{
		enabled:   enabled && colorAllowed(),
		bold:      color.New(color.Bold),
		underline: color.New(color.Underline),
		red:       color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{s.bold, s.underline, s.red} {
		if s.enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// StylerFor returns a Styler for output written to f.
func StylerFor(f *os.File) Styler {
	return NewStyler(IsTerminal(f))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && isTerminalFn(int(f.Fd()))
}

func colorAllowed() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	termName := os.Getenv("TERM")
	return termName != "" && termName != "dumb"
}

func (s Styler) Enabled() bool { return s.enabled }

func (s Styler) Bold(text string) string      { return s.wrap(s.bold, text) }
func (s Styler) Underline(text string) string { return s.wrap(s.underline, text) }

// ErrorPrefix renders the "error:" label put in front of CLI errors.
func (s Styler) ErrorPrefix() string {
	return s.wrap(s.red, "error:")
}

func (s Styler) wrap(c *color.Color, text string) string {
	if !s.enabled || c == nil {
		return text
	}
	return c.Sprint(text)
}
