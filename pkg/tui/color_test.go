// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"
	"strings"
	"testing"
)

func TestNewStylerEnv(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		noColor string
		term    string
		want    bool
	}{
		{"disabled", false, "", "xterm-256color", false},
		{"enabled", true, "", "xterm-256color", true},
		{"no color", true, "1", "xterm-256color", false},
		{"dumb term", true, "", "dumb", false},
		{"empty term", true, "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("TERM", tt.term)
			if got := NewStyler(tt.enabled).Enabled(); got != tt.want {
				t.Fatalf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStylerPlain(t *testing.T) {
	s := NewStyler(false)
	if got := s.Bold("--help"); got != "--help" {
		t.Fatalf("Bold() = %q, want %q", got, "--help")
	}
	if got := s.Underline("Usage:"); got != "Usage:" {
		t.Fatalf("Underline() = %q, want %q", got, "Usage:")
	}
	if got := s.ErrorPrefix(); got != "error:" {
		t.Fatalf("ErrorPrefix() = %q, want %q", got, "error:")
	}
	var zero Styler
	if got := zero.Bold("x"); got != "x" {
		t.Fatalf("zero Styler Bold() = %q, want %q", got, "x")
	}
}

func TestStylerColored(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")
	s := NewStyler(true)

	got := s.Bold("--help")
	if !strings.HasPrefix(got, "\x1b[1m") || !strings.Contains(got, "--help") {
		t.Fatalf("Bold() = %q, want bold escape around text", got)
	}
	got = s.Underline("Usage:")
	if !strings.HasPrefix(got, "\x1b[4m") || !strings.Contains(got, "Usage:") {
		t.Fatalf("Underline() = %q, want underline escape around text", got)
	}
}

func TestStylerFor(t *testing.T) {
	old := isTerminalFn
	t.Cleanup(func() { isTerminalFn = old })
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm")

	isTerminalFn = func(int) bool { return false }
	if StylerFor(os.Stderr).Enabled() {
		t.Fatalf("StylerFor(non-terminal) enabled color")
	}
	isTerminalFn = func(int) bool { return true }
	if !StylerFor(os.Stderr).Enabled() {
		t.Fatalf("StylerFor(terminal) disabled color")
	}
	if IsTerminal(nil) {
		t.Fatalf("IsTerminal(nil) = true")
	}
}
