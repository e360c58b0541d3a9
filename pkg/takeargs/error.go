// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package takeargs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is.
var (
	ErrUnexpectedArg    = errors.New("unexpected argument")
	ErrUndefinedCommand = errors.New("undefined command")
	ErrMissingCommand   = errors.New("missing command")
	ErrInvalidArg       = errors.New("invalid argument")
	ErrMissingArg       = errors.New("missing argument")
	ErrInvalidOpt       = errors.New("invalid option")
	ErrMissingOpt       = errors.New("missing option")
)

// UnexpectedArgError reports a token nothing consumed.
type UnexpectedArgError struct {
	Arg          string
	HelpFlagName string
}

func (e *UnexpectedArgError) Error() string        { return e.Render(PlainStyler{}) }
func (e *UnexpectedArgError) Is(target error) bool { return target == ErrUnexpectedArg }
func (e *UnexpectedArgError) helpFlag() string     { return e.HelpFlagName }

func (e *UnexpectedArgError) Render(s Styler) string {
	return fmt.Sprintf("unexpected argument '%s' found", s.Bold(e.Arg))
}

// UndefinedCommandError reports a token where a subcommand was expected.
type UndefinedCommandError struct {
	Arg string
	// Commands lists the names that were tried, in declaration order.
	Commands     []string
	HelpFlagName string
}

func (e *UndefinedCommandError) Error() string        { return e.Render(PlainStyler{}) }
func (e *UndefinedCommandError) Is(target error) bool { return target == ErrUndefinedCommand }
func (e *UndefinedCommandError) helpFlag() string     { return e.HelpFlagName }

func (e *UndefinedCommandError) Render(s Styler) string {
	return fmt.Sprintf("undefined command '%s' found", s.Bold(e.Arg))
}

// MissingCommandError reports that the arguments ran out where a subcommand
// was expected.
type MissingCommandError struct {
	Commands     []string
	HelpFlagName string
}

func (e *MissingCommandError) Error() string        { return e.Render(PlainStyler{}) }
func (e *MissingCommandError) Is(target error) bool { return target == ErrMissingCommand }
func (e *MissingCommandError) helpFlag() string     { return e.HelpFlagName }

func (e *MissingCommandError) Render(s Styler) string {
	if len(e.Commands) == 0 {
		return "missing command"
	}
	names := make([]string, len(e.Commands))
	for i, c := range e.Commands {
		names[i] = "'" + s.Bold(c) + "'"
	}
	return "missing command, expected one of " + strings.Join(names, ", ")
}

// InvalidArgError reports a positional value rejected by a parser.
type InvalidArgError struct {
	Spec         ArgSpec
	Value        string
	Source       Source
	Err          error
	HelpFlagName string
}

func (e *InvalidArgError) Error() string        { return e.Render(PlainStyler{}) }
func (e *InvalidArgError) Unwrap() error        { return e.Err }
func (e *InvalidArgError) Is(target error) bool { return target == ErrInvalidArg }
func (e *InvalidArgError) helpFlag() string     { return e.HelpFlagName }

func (e *InvalidArgError) Render(s Styler) string {
	return invalidValue(s, e.Value, argLabel(e.Spec, true), e.Source, e.Spec.Default, e.Err)
}

// MissingArgError reports a required positional argument that was absent.
type MissingArgError struct {
	Spec         ArgSpec
	HelpFlagName string
}

func (e *MissingArgError) Error() string        { return e.Render(PlainStyler{}) }
func (e *MissingArgError) Is(target error) bool { return target == ErrMissingArg }
func (e *MissingArgError) helpFlag() string     { return e.HelpFlagName }

func (e *MissingArgError) Render(s Styler) string {
	return fmt.Sprintf("missing required argument '%s'", s.Bold(argLabel(e.Spec, true)))
}

// InvalidOptError reports an option value rejected by a parser.
type InvalidOptError struct {
	Spec OptSpec
	// Name is the option as written, e.g. "-n" or "--lines".
	Name         string
	Value        string
	Source       Source
	Err          error
	HelpFlagName string
}

func (e *InvalidOptError) Error() string        { return e.Render(PlainStyler{}) }
func (e *InvalidOptError) Unwrap() error        { return e.Err }
func (e *InvalidOptError) Is(target error) bool { return target == ErrInvalidOpt }
func (e *InvalidOptError) helpFlag() string     { return e.HelpFlagName }

func (e *InvalidOptError) Render(s Styler) string {
	label := e.Name + " <" + e.Spec.typeLabel() + ">"
	if e.Source == SourceEnv {
		label += " (env " + e.Spec.Env + ")"
	}
	return invalidValue(s, e.Value, label, e.Source, e.Spec.Default, e.Err)
}

// MissingOptError reports a required option that was absent, or an option
// name that was given without its value.
type MissingOptError struct {
	Spec         OptSpec
	Name         string
	MissingValue bool
	HelpFlagName string
}

func (e *MissingOptError) Error() string        { return e.Render(PlainStyler{}) }
func (e *MissingOptError) Is(target error) bool { return target == ErrMissingOpt }
func (e *MissingOptError) helpFlag() string     { return e.HelpFlagName }

func (e *MissingOptError) Render(s Styler) string {
	label := s.Bold(e.Name + " <" + e.Spec.typeLabel() + ">")
	if e.MissingValue {
		return fmt.Sprintf("a value is required for '%s' but none was supplied", label)
	}
	return fmt.Sprintf("missing required option '%s'", label)
}

// OtherError carries an application error so that it renders with the same
// help hint as the built-in errors.
type OtherError struct {
	Err          error
	HelpFlagName string
}

func (e *OtherError) Error() string        { return e.Err.Error() }
func (e *OtherError) Unwrap() error        { return e.Err }
func (e *OtherError) Render(Styler) string { return e.Err.Error() }
func (e *OtherError) helpFlag() string     { return e.HelpFlagName }

// Errorf returns an OtherError tagged with the store's help flag.
func (a *RawArgs) Errorf(format string, args ...any) error {
	return &OtherError{Err: fmt.Errorf(format, args...), HelpFlagName: a.metadata.HelpFlagName}
}

// Render formats err with s. Errors from this package get a
// "Try '--help' for more information." line when a help flag is named.
func Render(err error, s Styler) string {
	s = styleOrPlain(s)
	var b strings.Builder
	var r interface{ Render(Styler) string }
	if errors.As(err, &r) {
		b.WriteString(r.Render(s))
	} else {
		b.WriteString(err.Error())
	}
	var h interface{ helpFlag() string }
	if errors.As(err, &h) && h.helpFlag() != "" {
		fmt.Fprintf(&b, "\nTry '%s' for more information.", s.Bold("--"+h.helpFlag()))
	}
	return b.String()
}

func invalidValue(s Styler, value, label string, src Source, def string, err error) string {
	msg := fmt.Sprintf("invalid value '%s' for '%s'", s.Bold(value), s.Bold(label))
	if src == SourceDefault && value == def {
		msg += " (default)"
	}
	if err != nil {
		msg += ": " + err.Error()
	}
	return msg
}

// argLabel renders a positional name as "<NAME>" when required and
// "[NAME]" otherwise.
func argLabel(s ArgSpec, required bool) string {
	if required {
		return "<" + s.Name + ">"
	}
	return "[" + s.Name + "]"
}
