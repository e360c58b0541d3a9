// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package takeargs

// The Parse helpers turn a take result into a typed value. In help mode they
// never fail: an absent or unparsable value yields the zero value so that
// the rest of the grammar can still be declared before Finish renders help.

// ParseArg parses a required positional argument.
func ParseArg[T any](arg Arg, parse func(string) (T, error)) (T, error) {
	var zero T
	if !arg.IsPresent() {
		if arg.helpMode {
			return zero, nil
		}
		return zero, &MissingArgError{Spec: arg.spec, HelpFlagName: arg.helpFlag}
	}
	return parseArgValue(arg, parse)
}

// ParseOptionalArg parses a positional argument that may be absent. The
// boolean reports whether a value was parsed.
func ParseOptionalArg[T any](arg Arg, parse func(string) (T, error)) (T, bool, error) {
	var zero T
	if !arg.IsPresent() {
		return zero, false, nil
	}
	v, err := parseArgValue(arg, parse)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

func parseArgValue[T any](arg Arg, parse func(string) (T, error)) (T, error) {
	v, err := parse(arg.value)
	if err != nil {
		var zero T
		if arg.helpMode {
			return zero, nil
		}
		return zero, &InvalidArgError{
			Spec:         arg.spec,
			Value:        arg.value,
			Source:       arg.source,
			Err:          err,
			HelpFlagName: arg.helpFlag,
		}
	}
	return v, nil
}

// ParseOpt parses a required option. An option named without a value is
// reported as a MissingOptError with MissingValue set.
func ParseOpt[T any](opt Opt, parse func(string) (T, error)) (T, error) {
	var zero T
	if !opt.IsValuePresent() {
		if opt.helpMode {
			return zero, nil
		}
		return zero, opt.missingError()
	}
	return parseOptValue(opt, parse)
}

// ParseOptionalOpt parses an option that may be absent. An option named
// without a value is still an error.
func ParseOptionalOpt[T any](opt Opt, parse func(string) (T, error)) (T, bool, error) {
	var zero T
	switch {
	case opt.source == SourceMissingValue:
		if opt.helpMode {
			return zero, false, nil
		}
		return zero, false, opt.missingError()
	case !opt.IsPresent():
		return zero, false, nil
	}
	v, err := parseOptValue(opt, parse)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

func parseOptValue[T any](opt Opt, parse func(string) (T, error)) (T, error) {
	v, err := parse(opt.value)
	if err != nil {
		var zero T
		if opt.helpMode {
			return zero, nil
		}
		return zero, &InvalidOptError{
			Spec:         opt.spec,
			Name:         opt.MatchedName(),
			Value:        opt.value,
			Source:       opt.source,
			Err:          err,
			HelpFlagName: opt.helpFlag,
		}
	}
	return v, nil
}

func (o Opt) missingError() error {
	return &MissingOptError{
		Spec:         o.spec,
		Name:         o.MatchedName(),
		MissingValue: o.source == SourceMissingValue,
		HelpFlagName: o.helpFlag,
	}
}

// String is a parse function that accepts any text.
func String(s string) (string, error) { return s, nil }
