// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/takeargs/pkg/takeargs"
	"tailscale.com/util/mak"
)

const appDescription = "Control services on a catch host"

type CommandInfo struct {
	Name        string
	Description string
}

var commandInfos = []CommandInfo{
	{Name: "run", Description: "Install/update from a payload (binary, compose, image, Dockerfile)"},
	{Name: "status", Description: "Show status of a service"},
	{Name: "logs", Description: "Show logs of a service"},
	{Name: "env", Description: "Manage service environment files"},
}

var envCommandInfos = []CommandInfo{
	{Name: "show", Description: "Print the current env file"},
	{Name: "set", Description: "Set env keys"},
}

// Command is a fully resolved catchctl invocation.
type Command struct {
	Name    string `json:"command" yaml:"command"`
	Host    string `json:"host" yaml:"host"`
	RPCPort int    `json:"rpcPort" yaml:"rpcPort"`
	Format  string `json:"-" yaml:"-"`
	Service string `json:"service,omitempty" yaml:"service,omitempty"`

	Run     *RunFlags         `json:"run,omitempty" yaml:"run,omitempty"`
	Logs    *LogsFlags        `json:"logs,omitempty" yaml:"logs,omitempty"`
	EnvShow *EnvShowFlags     `json:"envShow,omitempty" yaml:"envShow,omitempty"`
	Env     map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
}

type RunFlags struct {
	Payload     string   `json:"payload" yaml:"payload"`
	Args        []string `json:"args,omitempty" yaml:"args,omitempty"`
	Net         string   `json:"net" yaml:"net"`
	TsVer       string   `json:"tsVer,omitempty" yaml:"tsVer,omitempty"`
	TsExit      string   `json:"tsExit,omitempty" yaml:"tsExit,omitempty"`
	TsTags      []string `json:"tsTags,omitempty" yaml:"tsTags,omitempty"`
	TsAuthKey   string   `json:"-" yaml:"-"`
	MacvlanVlan int      `json:"macvlanVlan,omitempty" yaml:"macvlanVlan,omitempty"`
	Restart     bool     `json:"restart" yaml:"restart"`
	Pull        bool     `json:"pull" yaml:"pull"`
	Publish     []string `json:"publish,omitempty" yaml:"publish,omitempty"`
}

type LogsFlags struct {
	Follow bool `json:"follow" yaml:"follow"`
	Lines  int  `json:"lines" yaml:"lines"`
}

type EnvShowFlags struct {
	Staged bool `json:"staged" yaml:"staged"`
}

// Parse declares the catchctl grammar on a and returns what it resolved.
// The caller must still call a.Finish: it reports unconsumed tokens and a
// missing or unknown command, or returns help text when help was requested.
func Parse(a *takeargs.RawArgs, cfg *Config) (*Command, error) {
	a.Metadata().AppDescription = appDescription

	// "--" goes first so no named spec can reach into payload arguments.
	end := takeargs.OptionsEndFlag.Take(a)
	takeargs.HelpFlag.TakeHelp(a)

	version := takeargs.VersionFlag.Take(a)

	cmd := &Command{}
	var err error
	cmd.Host, err = takeargs.ParseOpt(takeargs.OptSpec{
		Long:    "host",
		Short:   'H',
		Type:    "HOST",
		Doc:     "Catch host to connect to",
		Env:     "CATCH_HOST",
		Default: cfg.host(),
	}.Take(a), parseHost)
	if err != nil {
		return nil, err
	}
	cmd.RPCPort, err = takeargs.ParseOpt(takeargs.OptSpec{
		Long:    "rpc-port",
		Type:    "PORT",
		Doc:     "Catch RPC port",
		Env:     "CATCH_RPC_PORT",
		Default: cfg.rpcPort(),
	}.Take(a), parsePort)
	if err != nil {
		return nil, err
	}
	cmd.Format, err = takeargs.ParseOpt(takeargs.OptSpec{
		Long:    "format",
		Type:    "FORMAT",
		Doc:     "Output format: plain, json or yaml",
		Default: "plain",
	}.Take(a), parseFormat)
	if err != nil {
		return nil, err
	}
	if version.IsPresent() {
		cmd.Name = "version"
		return cmd, nil
	}

	for _, info := range commandInfos {
		c := takeargs.CmdSpec{Name: info.Name, Doc: info.Description}.Take(a)
		if !c.IsPresent() {
			continue
		}
		cmd.Name = info.Name
		switch info.Name {
		case "run":
			err = parseRun(a, c, end, cmd, cfg)
		case "status":
			err = parseStatus(a, c, cmd)
		case "logs":
			err = parseLogs(a, c, cmd)
		case "env":
			err = parseEnv(a, c, cmd)
		}
		if err != nil {
			return nil, err
		}
		return cmd, nil
	}
	return cmd, nil
}

func parseRun(a *takeargs.RawArgs, c takeargs.Cmd, end takeargs.Flag, cmd *Command, cfg *Config) error {
	lo, _ := c.Index()
	// Positionals before "--" belong to run; everything after it is ARGS.
	// Without "--" leftovers are left for Finish to report.
	from, hi := -1, 0
	if i, ok := end.Index(); ok && i > lo {
		from, hi = i, i-1
	}
	r := &RunFlags{}

	var err error
	r.Net, err = takeargs.ParseOpt(takeargs.OptSpec{
		Long:     "net",
		Type:     "NET",
		Doc:      "Networks to attach, comma-separated: svc, ts, macvlan",
		Default:  cfg.net(),
		MinIndex: lo,
	}.Take(a), parseNet)
	if err != nil {
		return err
	}
	ver, ok, err := takeargs.ParseOptionalOpt(takeargs.OptSpec{
		Long:     "ts-ver",
		Type:     "SEMVER",
		Doc:      "Tailscale version to run in the service netns",
		MinIndex: lo,
	}.Take(a), semver.NewVersion)
	if err != nil {
		return err
	}
	if ok {
		r.TsVer = ver.String()
	}
	r.TsExit, _, err = takeargs.ParseOptionalOpt(takeargs.OptSpec{
		Long:     "ts-exit",
		Type:     "NODE",
		Doc:      "Exit node for the service's tailscale",
		MinIndex: lo,
	}.Take(a), takeargs.String)
	if err != nil {
		return err
	}
	tags, err := takeAllOpts(a, takeargs.OptSpec{
		Long:     "ts-tags",
		Type:     "TAGS",
		Doc:      "Comma-separated tailscale tags\nMay be repeated.",
		MinIndex: lo,
	}, parseTags)
	if err != nil {
		return err
	}
	r.TsTags = slices.Concat(tags...)
	r.TsAuthKey, _, err = takeargs.ParseOptionalOpt(takeargs.OptSpec{
		Long:     "ts-auth-key",
		Type:     "KEY",
		Doc:      "Tailscale auth key",
		Env:      "TS_AUTHKEY",
		MinIndex: lo,
	}.Take(a), takeargs.String)
	if err != nil {
		return err
	}
	r.MacvlanVlan, _, err = takeargs.ParseOptionalOpt(takeargs.OptSpec{
		Long:     "macvlan-vlan",
		Type:     "VLAN",
		Doc:      "VLAN tag for the macvlan interface",
		MinIndex: lo,
	}.Take(a), parseVLAN)
	if err != nil {
		return err
	}
	r.Publish, err = takeAllOpts(a, takeargs.OptSpec{
		Long:     "publish",
		Short:    'p',
		Type:     "PORTS",
		Doc:      "Publish a port, HOST:CONTAINER or PORT\nMay be repeated.",
		MinIndex: lo,
	}, parsePublish)
	if err != nil {
		return err
	}
	r.Pull = takeargs.FlagSpec{Long: "pull", Doc: "Pull images before starting", MinIndex: lo}.Take(a).IsPresent()
	r.Restart = !takeargs.FlagSpec{Long: "no-restart", Doc: "Do not restart the service after updating", MinIndex: lo}.Take(a).IsPresent()

	cmd.Service, err = takeargs.ParseArg(takeargs.ArgSpec{
		Name:     "SVC",
		Doc:      "Service name",
		Example:  "web",
		MinIndex: lo,
		MaxIndex: hi,
	}.Take(a), parseServiceName)
	if err != nil {
		return err
	}
	var entry ServiceEntry
	if !a.Metadata().HelpMode {
		entry, _ = cfg.Service(cmd.Service)
	}
	r.Payload, err = takeargs.ParseArg(takeargs.ArgSpec{
		Name:     "PAYLOAD",
		Doc:      "Binary, compose file, image ref or Dockerfile",
		Example:  "./bin/web",
		Default:  entry.Payload,
		MinIndex: lo,
		MaxIndex: hi,
	}.Take(a), takeargs.String)
	if err != nil {
		return err
	}

	args := takeargs.ArgSpec{Name: "ARGS", Doc: "Arguments for the payload, after --", MinIndex: max(from, 0)}
	for from >= 0 || a.Metadata().HelpMode {
		arg := args.Take(a)
		if !arg.IsPresent() {
			break
		}
		r.Args = append(r.Args, arg.Value())
	}
	if len(r.Args) == 0 {
		r.Args = entry.Args
	}
	cmd.Run = r
	return nil
}

func parseStatus(a *takeargs.RawArgs, c takeargs.Cmd, cmd *Command) error {
	lo, _ := c.Index()
	svc, _, err := takeargs.ParseOptionalArg(takeargs.ArgSpec{
		Name:     "SVC",
		Doc:      "Service name; all services when omitted",
		MinIndex: lo,
	}.Take(a), parseServiceName)
	if err != nil {
		return err
	}
	cmd.Service = svc
	return nil
}

func parseLogs(a *takeargs.RawArgs, c takeargs.Cmd, cmd *Command) error {
	lo, _ := c.Index()
	l := &LogsFlags{}
	l.Follow = takeargs.FlagSpec{Long: "follow", Short: 'f', Doc: "Follow log output", MinIndex: lo}.Take(a).IsPresent()

	var err error
	l.Lines, err = takeargs.ParseOpt(takeargs.OptSpec{
		Long:     "lines",
		Short:    'n',
		Type:     "LINES",
		Doc:      "Number of lines to show; -1 for all",
		Default:  "100",
		MinIndex: lo,
	}.Take(a), parseLines)
	if err != nil {
		return err
	}
	cmd.Service, err = takeargs.ParseArg(takeargs.ArgSpec{
		Name:     "SVC",
		Doc:      "Service name",
		Example:  "web",
		MinIndex: lo,
	}.Take(a), parseServiceName)
	if err != nil {
		return err
	}
	cmd.Logs = l
	return nil
}

func parseEnv(a *takeargs.RawArgs, c takeargs.Cmd, cmd *Command) error {
	lo, _ := c.Index()
	for _, info := range envCommandInfos {
		sub := takeargs.CmdSpec{Name: info.Name, Doc: info.Description, MinIndex: lo}.Take(a)
		if !sub.IsPresent() {
			continue
		}
		cmd.Name = "env " + info.Name
		if info.Name == "show" {
			return parseEnvShow(a, sub, cmd)
		}
		return parseEnvSet(a, sub, cmd)
	}
	return nil
}

func parseEnvShow(a *takeargs.RawArgs, c takeargs.Cmd, cmd *Command) error {
	lo, _ := c.Index()
	staged := takeargs.FlagSpec{Long: "staged", Doc: "Show the staged env file", MinIndex: lo}.Take(a)

	var err error
	cmd.Service, err = takeargs.ParseArg(takeargs.ArgSpec{
		Name:     "SVC",
		Doc:      "Service name",
		Example:  "web",
		MinIndex: lo,
	}.Take(a), parseServiceName)
	if err != nil {
		return err
	}
	cmd.EnvShow = &EnvShowFlags{Staged: staged.IsPresent()}
	return nil
}

func parseEnvSet(a *takeargs.RawArgs, c takeargs.Cmd, cmd *Command) error {
	lo, _ := c.Index()

	var err error
	cmd.Service, err = takeargs.ParseArg(takeargs.ArgSpec{
		Name:     "SVC",
		Doc:      "Service name",
		Example:  "web",
		MinIndex: lo,
	}.Take(a), parseServiceName)
	if err != nil {
		return err
	}

	spec := takeargs.ArgSpec{Name: "KEY=VALUE", Doc: "Variables to set", Example: "PORT=8080", MinIndex: lo}
	first, err := takeargs.ParseArg(spec.Take(a), parseAssignment)
	if err != nil {
		return err
	}
	if first.Key != "" {
		mak.Set(&cmd.Env, first.Key, first.Value)
	}
	for {
		kv, ok, err := takeargs.ParseOptionalArg(spec.Take(a), parseAssignment)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		mak.Set(&cmd.Env, kv.Key, kv.Value)
	}
}

// takeAllOpts takes spec until it is absent. spec must not have a Default
// or Env, since those resolve on every take.
func takeAllOpts[T any](a *takeargs.RawArgs, spec takeargs.OptSpec, parse func(string) (T, error)) ([]T, error) {
	var out []T
	for {
		v, ok, err := takeargs.ParseOptionalOpt(spec.Take(a), parse)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

func parseServiceName(s string) (string, error) {
	if s == "" {
		return "", errors.New("service name is empty")
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return "", errors.New("service names may only contain lowercase letters, digits, '-' and '_'")
		}
	}
	return s, nil
}

func parseHost(s string) (string, error) {
	if s == "" || strings.ContainsAny(s, " \t/") {
		return "", errors.New("not a host name")
	}
	return s, nil
}

func parsePort(s string) (int, error) {
	p, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if p < 1 || p > 65535 {
		return 0, errors.New("port must be between 1 and 65535")
	}
	return p, nil
}

var formats = []string{"plain", "json", "yaml"}

func parseFormat(s string) (string, error) {
	if !slices.Contains(formats, s) {
		return "", fmt.Errorf("must be one of %s", strings.Join(formats, ", "))
	}
	return s, nil
}

var networks = []string{"svc", "ts", "macvlan"}

func parseNet(s string) (string, error) {
	for _, n := range strings.Split(s, ",") {
		if !slices.Contains(networks, strings.TrimSpace(n)) {
			return "", fmt.Errorf("unknown network %q", n)
		}
	}
	return s, nil
}

func parseTags(s string) ([]string, error) {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if !strings.HasPrefix(t, "tag:") {
			return nil, fmt.Errorf("tag %q must start with \"tag:\"", t)
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func parseVLAN(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 1 || v > 4094 {
		return 0, errors.New("vlan must be between 1 and 4094")
	}
	return v, nil
}

func parsePublish(s string) (string, error) {
	host, container, found := strings.Cut(s, ":")
	if _, err := parsePort(host); err != nil {
		return "", err
	}
	if found {
		if _, err := parsePort(container); err != nil {
			return "", err
		}
	}
	return s, nil
}

func parseLines(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < -1 {
		return 0, errors.New("must be -1 or more")
	}
	return n, nil
}

type assignment struct {
	Key   string
	Value string
}

func parseAssignment(s string) (assignment, error) {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return assignment{}, errors.New("expected KEY=VALUE")
	}
	return assignment{Key: k, Value: v}, nil
}
