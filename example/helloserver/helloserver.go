// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/yeetrun/takeargs/pkg/takeargs"
	"github.com/yeetrun/takeargs/pkg/tui"
)

func main() {
	a := takeargs.New(os.Args)
	a.Metadata().AppDescription = "Serve a greeting over HTTP"
	a.SetStyler(tui.StylerFor(os.Stdout))
	takeargs.HelpFlag.TakeHelp(a)

	addr, err := takeargs.ParseOpt(takeargs.OptSpec{
		Long:    "listen",
		Short:   'l',
		Type:    "ADDR",
		Doc:     "Address to listen on",
		Env:     "HELLO_LISTEN",
		Default: ":8080",
	}.Take(a), parseAddr)
	if err == nil {
		var help string
		help, err = a.Finish()
		if err == nil && help != "" {
			fmt.Print(help)
			return
		}
	}
	if err != nil {
		s := tui.StylerFor(os.Stderr)
		fmt.Fprintln(os.Stderr, s.ErrorPrefix()+" "+takeargs.Render(err, s))
		os.Exit(2)
	}

	log.Printf("listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/env" {
			fmt.Fprintln(w, os.Environ())
			return
		}
		fmt.Fprintln(w, "Hello, world!")
	})))
}

func parseAddr(s string) (string, error) {
	if _, _, err := net.SplitHostPort(s); err != nil {
		return "", err
	}
	return s, nil
}
