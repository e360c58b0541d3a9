// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

const (
	configName    = "catchctl.toml"
	configVersion = 1

	DefaultHost    = "catch"
	DefaultRPCPort = 41548
	defaultNet     = "svc"
)

// Config is a catchctl.toml project file. Its values become option
// defaults, so they show up in help and lose to flags and env vars.
type Config struct {
	Version  int            `toml:"version,omitempty"`
	Host     string         `toml:"host,omitempty"`
	RPCPort  int            `toml:"rpc_port,omitempty"`
	Net      string         `toml:"net,omitempty"`
	Services []ServiceEntry `toml:"services,omitempty"`
}

type ServiceEntry struct {
	Name    string   `toml:"name"`
	Payload string   `toml:"payload,omitempty"`
	Args    []string `toml:"args,omitempty"`
}

type ConfigLocation struct {
	Path   string
	Dir    string
	Config *Config
}

// LoadConfig finds catchctl.toml in startDir or the closest parent that has
// one. It returns nil and no error when there is none.
func LoadConfig(startDir string) (*ConfigLocation, error) {
	path, err := findConfigPath(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Version == 0 {
		cfg.Version = configVersion
	}
	if cfg.Version > configVersion {
		return nil, fmt.Errorf("%s: unsupported version %d", path, cfg.Version)
	}
	return &ConfigLocation{Path: path, Dir: filepath.Dir(path), Config: &cfg}, nil
}

func findConfigPath(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		path := filepath.Join(dir, configName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func (c *Config) host() string {
	if c == nil || c.Host == "" {
		return DefaultHost
	}
	return c.Host
}

func (c *Config) rpcPort() string {
	if c == nil || c.RPCPort == 0 {
		return strconv.Itoa(DefaultRPCPort)
	}
	return strconv.Itoa(c.RPCPort)
}

func (c *Config) net() string {
	if c == nil || c.Net == "" {
		return defaultNet
	}
	return c.Net
}

// Service returns the entry for the named service.
func (c *Config) Service(name string) (ServiceEntry, bool) {
	if c == nil {
		return ServiceEntry{}, false
	}
	for _, entry := range c.Services {
		if entry.Name == name {
			entry.Args = append([]string{}, entry.Args...)
			return entry, true
		}
	}
	return ServiceEntry{}, false
}
