// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, configName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, `
host = "box"
rpc_port = 9000

[[services]]
name = "web"
payload = "./bin/web"
args = ["--port", "80"]
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	loc, err := LoadConfig(nested)
	if err != nil {
		t.Fatalf("LoadConfig error = %v", err)
	}
	if loc == nil {
		t.Fatalf("LoadConfig found nothing")
	}
	if loc.Path != path || loc.Dir != root {
		t.Fatalf("location = (%q, %q), want (%q, %q)", loc.Path, loc.Dir, path, root)
	}
	cfg := loc.Config
	if cfg.Version != configVersion || cfg.host() != "box" || cfg.rpcPort() != "9000" || cfg.net() != "svc" {
		t.Fatalf("config = %+v", cfg)
	}
	entry, ok := cfg.Service("web")
	if !ok || entry.Payload != "./bin/web" || strings.Join(entry.Args, " ") != "--port 80" {
		t.Fatalf("Service(web) = (%+v, %v)", entry, ok)
	}
	entry.Args[0] = "changed"
	if again, _ := cfg.Service("web"); again.Args[0] != "--port" {
		t.Fatalf("Service returned shared args")
	}
	if _, ok := cfg.Service("api"); ok {
		t.Fatalf("Service(api) found an entry")
	}
}

func TestLoadConfigMissing(t *testing.T) {
	loc, err := LoadConfig(t.TempDir())
	if err != nil || loc != nil {
		t.Fatalf("LoadConfig = (%v, %v), want (nil, nil)", loc, err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "host = ", "failed to parse"},
		{"version", "version = 2\n", "unsupported version 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.body)
			_, err := LoadConfig(dir)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("LoadConfig error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestNilConfigDefaults(t *testing.T) {
	var cfg *Config
	if cfg.host() != DefaultHost || cfg.rpcPort() != "41548" || cfg.net() != "svc" {
		t.Fatalf("nil config defaults = (%q, %q, %q)", cfg.host(), cfg.rpcPort(), cfg.net())
	}
	if _, ok := cfg.Service("web"); ok {
		t.Fatalf("nil config has services")
	}
}
