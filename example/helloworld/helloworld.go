// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/yeetrun/takeargs/pkg/takeargs"
	"github.com/yeetrun/takeargs/pkg/tui"
)

type options struct {
	name     string
	count    int
	interval time.Duration
}

func main() {
	a := takeargs.New(os.Args)
	a.SetStyler(tui.StylerFor(os.Stdout))
	opts, help, err := parse(a)
	if err != nil {
		s := tui.StylerFor(os.Stderr)
		fmt.Fprintln(os.Stderr, s.ErrorPrefix()+" "+takeargs.Render(err, s))
		os.Exit(2)
	}
	if help != "" {
		fmt.Print(help)
		return
	}
	for i := 0; opts.count == 0 || i < opts.count; i++ {
		if i > 0 {
			time.Sleep(opts.interval)
		}
		fmt.Printf("Hello, %s!\n", opts.name)
	}
}

func parse(a *takeargs.RawArgs) (opts options, help string, err error) {
	a.Metadata().AppDescription = "Print a greeting until stopped"
	takeargs.HelpFlag.TakeHelp(a)

	opts.count, err = takeargs.ParseOpt(takeargs.OptSpec{
		Long:    "count",
		Short:   'n',
		Type:    "COUNT",
		Doc:     "Stop after COUNT greetings; 0 for no limit",
		Default: "0",
	}.Take(a), strconv.Atoi)
	if err != nil {
		return opts, "", err
	}
	opts.interval, err = takeargs.ParseOpt(takeargs.OptSpec{
		Long:    "interval",
		Type:    "DURATION",
		Doc:     "Time between greetings",
		Env:     "HELLO_INTERVAL",
		Default: "2s",
	}.Take(a), time.ParseDuration)
	if err != nil {
		return opts, "", err
	}
	opts.name, err = takeargs.ParseArg(takeargs.ArgSpec{
		Name:    "NAME",
		Doc:     "Who to greet",
		Default: "World",
	}.Take(a), takeargs.String)
	if err != nil {
		return opts, "", err
	}
	help, err = a.Finish()
	return opts, help, err
}
