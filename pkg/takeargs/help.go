// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package takeargs

import (
	"strings"
	"unicode/utf8"
)

// helpIndent prefixes the body lines of an entry in full help.
const helpIndent = "          "

// Help renders help text from the store's log and metadata.
func (a *RawArgs) Help() string {
	return RenderHelp(a.log, a.metadata, a.styler)
}

// RenderHelp renders help text from an extraction log. When the log contains
// a present Cmd, only what was declared after the last one is described,
// along with the help flag.
func RenderHelp(log []Taken, md Metadata, s Styler) string {
	h := newHelpBuilder(log, md, styleOrPlain(s))
	return h.build()
}

type helpBuilder struct {
	md Metadata
	s  Styler

	// path holds the present commands, outermost first.
	path    []CmdSpec
	entries []Taken
	// distinct is entries with repeated specs dropped.
	distinct []Taken
	counts   map[any]int
}

func newHelpBuilder(log []Taken, md Metadata, s Styler) *helpBuilder {
	h := &helpBuilder{md: md, s: s, counts: make(map[any]int)}
	anchor := -1
	for i, t := range log {
		if c, ok := t.(Cmd); ok && c.present {
			anchor = i
			h.path = append(h.path, c.spec)
		}
	}
	for i, t := range log {
		if i > anchor || (i < anchor && h.isHelpFlag(t)) {
			h.entries = append(h.entries, t)
		}
	}
	for _, t := range h.entries {
		k := t.takenSpec()
		if h.counts[k] == 0 {
			h.distinct = append(h.distinct, t)
		}
		h.counts[k]++
	}
	return h
}

func (h *helpBuilder) isHelpFlag(t Taken) bool {
	f, ok := t.(Flag)
	return ok && h.md.HelpFlagName != "" && f.spec.Long == h.md.HelpFlagName
}

func (h *helpBuilder) build() string {
	var blocks []string
	if d := h.description(); d != "" {
		blocks = append(blocks, d+"\n")
	}
	blocks = append(blocks, h.usage())
	if ex := h.example(); ex != "" {
		blocks = append(blocks, ex)
	}
	blocks = append(blocks, h.sections()...)
	return strings.Join(blocks, "\n")
}

func (h *helpBuilder) heading(text string) string {
	return h.s.Bold(h.s.Underline(text))
}

func (h *helpBuilder) description() string {
	if len(h.path) > 0 {
		return h.path[len(h.path)-1].Doc
	}
	return h.md.AppDescription
}

func (h *helpBuilder) usage() string {
	var b strings.Builder
	b.WriteString(h.heading("Usage:"))
	b.WriteString(" ")
	b.WriteString(h.s.Bold(h.md.AppName))
	if len(h.path) > 0 {
		b.WriteString(" ...")
		for _, c := range h.path {
			b.WriteString(" " + h.s.Bold(c.Name))
		}
	}

	var hasOptions, hasCommands bool
	for _, t := range h.distinct {
		switch t := t.(type) {
		case Opt:
			if t.spec.Example == "" {
				hasOptions = true
				continue
			}
			b.WriteString(" " + t.spec.displayName(false) + " <" + t.spec.typeLabel() + ">")
		case Flag:
			hasOptions = true
		case Cmd:
			hasCommands = true
		}
	}
	if hasOptions {
		b.WriteString(" [OPTIONS]")
	}
	for _, t := range h.distinct {
		arg, ok := t.(Arg)
		if !ok {
			continue
		}
		b.WriteString(" " + argLabel(arg.spec, arg.spec.Example != ""))
		if h.counts[arg.spec] > 1 {
			b.WriteString("...")
		}
	}
	if hasCommands {
		b.WriteString(" <COMMAND>")
	}
	b.WriteString("\n")
	return b.String()
}

func (h *helpBuilder) example() string {
	var words []string
	for _, t := range h.distinct {
		switch t := t.(type) {
		case Arg:
			if t.spec.Example != "" {
				words = append(words, shellQuote(t.spec.Example))
			}
		case Opt:
			if t.spec.Example != "" {
				words = append(words, t.spec.displayName(false), shellQuote(t.spec.Example))
			}
		}
	}
	if len(words) == 0 {
		return ""
	}
	line := []string{h.md.AppName}
	for _, c := range h.path {
		line = append(line, c.Name)
	}
	line = append(line, words...)
	return h.heading("Example:") + "\n  $ " + strings.Join(line, " ") + "\n"
}

type helpEntry struct {
	name   string
	suffix string
	doc    string
	notes  []string
}

func (h *helpBuilder) sections() []string {
	var cmds, args, opts []helpEntry
	for _, t := range h.distinct {
		switch t := t.(type) {
		case Cmd:
			cmds = append(cmds, helpEntry{name: t.spec.Name, doc: t.spec.Doc})
		case Arg:
			e := helpEntry{name: argLabel(t.spec, t.spec.Example != ""), doc: t.spec.Doc}
			if t.spec.Default != "" {
				e.notes = append(e.notes, "[default: "+t.spec.Default+"]")
			}
			args = append(args, e)
		case Flag:
			e := helpEntry{name: namedLabel(t.spec.Long, t.spec.Short), doc: t.spec.Doc}
			if t.spec.Env != "" {
				e.notes = append(e.notes, "[env: "+t.spec.Env+"]")
			}
			opts = append(opts, e)
		case Opt:
			e := helpEntry{
				name:   namedLabel(t.spec.Long, t.spec.Short),
				suffix: " <" + t.spec.typeLabel() + ">",
				doc:    t.spec.Doc,
			}
			if t.spec.Env != "" {
				e.notes = append(e.notes, "[env: "+t.spec.Env+"]")
			}
			if t.spec.Default != "" {
				e.notes = append(e.notes, "[default: "+t.spec.Default+"]")
			}
			opts = append(opts, e)
		}
	}

	var out []string
	for _, sec := range []struct {
		title   string
		entries []helpEntry
	}{
		{"Commands:", cmds},
		{"Arguments:", args},
		{"Options:", opts},
	} {
		if len(sec.entries) == 0 {
			continue
		}
		out = append(out, h.section(sec.title, sec.entries))
	}
	return out
}

func (h *helpBuilder) section(title string, entries []helpEntry) string {
	var b strings.Builder
	b.WriteString(h.heading(title))
	b.WriteString("\n")
	if h.md.FullHelp {
		for _, e := range entries {
			b.WriteString("  " + h.s.Bold(e.name) + e.suffix + "\n")
			if e.doc != "" {
				for _, line := range strings.Split(e.doc, "\n") {
					b.WriteString(helpIndent + line + "\n")
				}
			}
			for _, n := range e.notes {
				b.WriteString(helpIndent + n + "\n")
			}
		}
		return b.String()
	}

	width := 0
	for _, e := range entries {
		width = max(width, utf8.RuneCountInString(e.name+e.suffix))
	}
	for _, e := range entries {
		b.WriteString("  " + h.s.Bold(e.name) + e.suffix)
		var rest []string
		if e.doc != "" {
			first, _, _ := strings.Cut(e.doc, "\n")
			rest = append(rest, first)
		}
		rest = append(rest, e.notes...)
		if len(rest) > 0 {
			pad := width - utf8.RuneCountInString(e.name+e.suffix) + 2
			b.WriteString(strings.Repeat(" ", pad) + strings.Join(rest, " "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// namedLabel renders "-s, --long", "    --long" or "-s".
func namedLabel(long string, short rune) string {
	switch {
	case short != 0 && long != "":
		return "-" + string(short) + ", --" + long
	case short != 0:
		return "-" + string(short)
	default:
		return "    --" + long
	}
}

// shellQuote quotes s for a POSIX shell when it is empty or contains
// whitespace, quotes or other shell metacharacters.
func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$`;&|<>()*?#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
