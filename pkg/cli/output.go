// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

type outputSection struct {
	Title string
	Rows  []outputRow
}

type outputRow struct {
	Label string
	Value string
}

// Write prints the resolved command in cmd.Format.
func Write(w io.Writer, cmd *Command) error {
	switch cmd.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cmd)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cmd); err != nil {
			return err
		}
		return enc.Close()
	case "", "plain":
		return writePlain(w, cmd)
	default:
		return fmt.Errorf("unknown output format %q", cmd.Format)
	}
}

func writePlain(w io.Writer, cmd *Command) error {
	sections := []outputSection{
		commandSection(cmd),
		runSection(cmd.Run),
		logsSection(cmd.Logs),
		envSection(cmd),
	}
	for i, section := range sections {
		if len(section.Rows) == 0 {
			continue
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, section.Title)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, row := range section.Rows {
			fmt.Fprintf(tw, "  %s:\t%s\n", row.Label, row.Value)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func commandSection(cmd *Command) outputSection {
	rows := []outputRow{
		{Label: "Command", Value: cmd.Name},
		{Label: "Host", Value: cmd.Host},
		{Label: "RPC port", Value: strconv.Itoa(cmd.RPCPort)},
	}
	if cmd.Service != "" {
		rows = append(rows, outputRow{Label: "Service", Value: cmd.Service})
	}
	return outputSection{Title: "Command", Rows: rows}
}

func runSection(r *RunFlags) outputSection {
	if r == nil {
		return outputSection{}
	}
	rows := []outputRow{
		{Label: "Payload", Value: r.Payload},
		{Label: "Net", Value: r.Net},
		{Label: "Restart", Value: strconv.FormatBool(r.Restart)},
		{Label: "Pull", Value: strconv.FormatBool(r.Pull)},
	}
	if len(r.Args) > 0 {
		rows = append(rows, outputRow{Label: "Args", Value: strings.Join(r.Args, " ")})
	}
	if r.TsVer != "" {
		rows = append(rows, outputRow{Label: "Tailscale version", Value: r.TsVer})
	}
	if r.TsExit != "" {
		rows = append(rows, outputRow{Label: "Exit node", Value: r.TsExit})
	}
	if len(r.TsTags) > 0 {
		rows = append(rows, outputRow{Label: "Tags", Value: strings.Join(r.TsTags, ",")})
	}
	if r.TsAuthKey != "" {
		rows = append(rows, outputRow{Label: "Auth key", Value: "(set)"})
	}
	if r.MacvlanVlan != 0 {
		rows = append(rows, outputRow{Label: "VLAN", Value: strconv.Itoa(r.MacvlanVlan)})
	}
	if len(r.Publish) > 0 {
		rows = append(rows, outputRow{Label: "Publish", Value: strings.Join(r.Publish, ", ")})
	}
	return outputSection{Title: "Run", Rows: rows}
}

func logsSection(l *LogsFlags) outputSection {
	if l == nil {
		return outputSection{}
	}
	lines := strconv.Itoa(l.Lines)
	if l.Lines < 0 {
		lines = "all"
	}
	return outputSection{Title: "Logs", Rows: []outputRow{
		{Label: "Follow", Value: strconv.FormatBool(l.Follow)},
		{Label: "Lines", Value: lines},
	}}
}

func envSection(cmd *Command) outputSection {
	var rows []outputRow
	if cmd.EnvShow != nil {
		rows = append(rows, outputRow{Label: "Staged", Value: strconv.FormatBool(cmd.EnvShow.Staged)})
	}
	for _, k := range slices.Sorted(maps.Keys(cmd.Env)) {
		rows = append(rows, outputRow{Label: k, Value: cmd.Env[k]})
	}
	return outputSection{Title: "Env", Rows: rows}
}
