// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "host with port", addr: NetAddress{Host: "localhost", Port: 7000}, expected: "localhost:7000"},
		{name: "ipv6", addr: NetAddress{Host: "::1", Port: 7000}, expected: "[::1]:7000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "host and port", input: "chat.example.org:7443", want: "chat.example.org:7443"},
		{name: "default port", input: "chat.example.org", want: "chat.example.org:7000"},
		{name: "ip default port", input: "10.0.0.1", want: "10.0.0.1:7000"},
		{name: "bracketed ipv6", input: "[::1]:9000", want: "[::1]:9000"},
		{name: "bracketed ipv6 default port", input: "[::1]", want: "[::1]:7000"},
		{name: "bare ipv6 default port", input: "::1", want: "[::1]:7000"},
		{name: "empty brackets", input: "[]", wantErr: true},
		{name: "trimmed", input: "  host:1 ", want: "host:1"},
		{name: "empty", input: "", wantErr: true},
		{name: "port not a number", input: "host:abc", wantErr: true},
		{name: "port zero", input: "host:0", wantErr: true},
		{name: "port too big", input: "host:70000", wantErr: true},
		{name: "missing host", input: ":7000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestRegisterFlags_Parse(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)

	err := fs.Parse([]string{
		"-s", "chat.example.org",
		"-u", "alice",
		"-k",
		"--plain",
		"--config-dir", "/tmp/tty",
		"-c", "/tmp/cfg.json",
		"--dsn", "file:p.db",
		"--dial-timeout", "2s",
		"--handshake-timeout", "4s",
		"--tick", "30ms",
		"--no-notify",
		"--silent",
		"--log-file", "x.log",
		"--log-level", "debug",
	})
	require.NoError(t, err)

	cfg := flags.config()
	assert.Equal(t, "chat.example.org:7000", cfg.Adapter.ServerAddress)
	assert.Equal(t, "alice", cfg.App.Username)
	assert.True(t, cfg.Adapter.Insecure)
	assert.True(t, cfg.App.Plain)
	assert.Equal(t, "/tmp/tty", cfg.App.ConfigDir)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "file:p.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Second, cfg.Adapter.DialTimeout)
	assert.Equal(t, 4*time.Second, cfg.Adapter.HandshakeTimeout)
	assert.Equal(t, 30*time.Millisecond, cfg.Workers.TickInterval)
	assert.True(t, cfg.Notify.Disabled)
	assert.True(t, cfg.Notify.Silent)
	assert.Equal(t, "x.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestRegisterFlags_InvalidServer(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	assert.Error(t, fs.Parse([]string{"--server", "host:nope"}))
}

func TestFlags_NilConfig(t *testing.T) {
	var f *Flags
	assert.Equal(t, &StructuredConfig{}, f.config())
}
