// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command catchctl parses catch service commands and prints what it resolved.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/yeetrun/takeargs/pkg/cli"
	"github.com/yeetrun/takeargs/pkg/takeargs"
	"github.com/yeetrun/takeargs/pkg/tui"
	"tailscale.com/util/must"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type app struct {
	dir      string
	stdout   io.Writer
	stderr   io.Writer
	outStyle tui.Styler
	errStyle tui.Styler
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("catchctl: ")
	a := &app{
		dir:      must.Get(os.Getwd()),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		outStyle: tui.StylerFor(os.Stdout),
		errStyle: tui.StylerFor(os.Stderr),
	}
	os.Exit(a.run(os.Args))
}

func (a *app) run(argv []string) int {
	var cfg *cli.Config
	loc, err := cli.LoadConfig(a.dir)
	if err != nil {
		log.Printf("ignoring config: %v", err)
	} else if loc != nil {
		cfg = loc.Config
	}

	args := takeargs.New(argv)
	args.SetStyler(a.outStyle)
	cmd, err := cli.Parse(args, cfg)
	if err == nil {
		var help string
		help, err = args.Finish()
		if err == nil && help != "" {
			fmt.Fprint(a.stdout, help)
			return exitOK
		}
	}
	if err != nil {
		fmt.Fprintln(a.stderr, a.errStyle.ErrorPrefix()+" "+takeargs.Render(err, a.errStyle))
		return exitUsage
	}

	if cmd.Name == "version" {
		fmt.Fprintf(a.stdout, "catchctl %s\n", version)
		return exitOK
	}
	if err := cli.Write(a.stdout, cmd); err != nil {
		log.Printf("%v", err)
		return exitError
	}
	return exitOK
}
