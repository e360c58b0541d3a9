// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package takeargs consumes command-line tokens one declaration at a time.
//
// There is no grammar object. A program builds a RawArgs from os.Args and
// then declares what it expects, in order, by calling Take on spec values:
//   - ArgSpec takes the next live token as a positional argument
//   - FlagSpec takes "--name" or a short character from a "-abc" cluster
//   - OptSpec takes a named option and its value
//   - CmdSpec takes a subcommand name
//
// Each Take consumes what it matched, so declaration order is precedence
// order, and appends its result to a log. Finish checks for leftovers or
// renders help from the log.
//
// # Usage
//
//	a := takeargs.New(os.Args)
//	a.Metadata().AppDescription = "Tail service logs"
//	takeargs.HelpFlag.TakeHelp(a)
//
//	follow := takeargs.FlagSpec{Long: "follow", Short: 'f', Doc: "Keep streaming"}.Take(a)
//	lines, err := takeargs.ParseOpt(takeargs.OptSpec{
//	    Long: "lines", Short: 'n', Type: "LINES", Default: "100",
//	}.Take(a), strconv.Atoi)
//	if err != nil {
//	    return err
//	}
//	svc, err := takeargs.ParseArg(takeargs.ArgSpec{Name: "SVC", Example: "web"}.Take(a), takeargs.String)
//	if err != nil {
//	    return err
//	}
//	help, err := a.Finish()
//	if err != nil {
//	    return err
//	}
//	if help != "" {
//	    fmt.Print(help)
//	    return nil
//	}
//
// # Help mode
//
// TakeHelp switches the store into help mode when "--help" or "-h" is
// present. From then on Arg, Flag and Opt takes ignore the command line and
// resolve from declared defaults and examples, so the rest of the program's
// declarations run unchanged and Finish returns help built from what was
// declared. Cmd takes still match, which scopes help to the selected
// subcommand.
//
// # Subcommands
//
// After a Cmd matches, declare its arguments with MinIndex set to the
// command's index so they cannot consume tokens that came before it.
package takeargs
