// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// go-tty-chat client. It aggregates all sub-configurations and is populated
// by merging values from command-line flags, environment variables, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with TTYCHAT_.
type StructuredConfig struct {
	// App holds the identity directory, the default username and the
	// frontend selection.
	App App `envPrefix:"APP_"`

	// Adapter holds the chat server address and connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage selects the profile record backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the tick interval of the event loop.
	Workers Workers `envPrefix:"WORKERS_"`

	// Codec holds message decoding parameters.
	Codec Codec `envPrefix:"CODEC_"`

	// Notify controls desktop notifications.
	Notify Notify `envPrefix:"NOTIFY_"`

	// Log controls the log file.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via TTYCHAT_CONFIG or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// ConfigDir is where identity keys and the profile record live.
	// Env: TTYCHAT_APP_CONFIG_DIR
	ConfigDir string `env:"CONFIG_DIR"`

	// Username pre-fills the connect form.
	// Env: TTYCHAT_APP_USERNAME
	Username string `env:"USERNAME"`

	// Plain selects the line-oriented frontend instead of the TUI.
	// Env: TTYCHAT_APP_PLAIN
	Plain bool `env:"PLAIN"`
}

// Adapter holds the session connector settings.
type Adapter struct {
	// ServerAddress is the chat server in "host[:port]" form.
	// Env: TTYCHAT_ADAPTER_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// Insecure disables certificate verification.
	// Env: TTYCHAT_ADAPTER_INSECURE
	Insecure bool `env:"INSECURE"`

	// DialTimeout bounds the TCP connect. Zero means no limit.
	// Env: TTYCHAT_ADAPTER_DIAL_TIMEOUT
	DialTimeout time.Duration `env:"DIAL_TIMEOUT"`

	// HandshakeTimeout bounds TLS plus authentication. Zero means no limit.
	// Env: TTYCHAT_ADAPTER_HANDSHAKE_TIMEOUT
	HandshakeTimeout time.Duration `env:"HANDSHAKE_TIMEOUT"`
}

// Storage groups the profile record backends.
type Storage struct {
	// DB selects the SQLite backend when DSN is set.
	DB DB `envPrefix:"DB_"`

	// ProfilesFile is the JSON record path, relative to ConfigDir unless
	// absolute.
	// Env: TTYCHAT_STORAGE_PROFILES_FILE
	ProfilesFile string `env:"PROFILES_FILE"`
}

// DB holds connection settings for the SQLite profile store.
type DB struct {
	// DSN is the go-sqlite3 data source name (e.g. "file:ttychat.db").
	// Env: TTYCHAT_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds event loop settings.
type Workers struct {
	// TickInterval drives redraws and the splash timer.
	// Env: TTYCHAT_WORKERS_TICK_INTERVAL
	TickInterval time.Duration `env:"TICK_INTERVAL"`
}

// Codec holds decoding parameters.
type Codec struct {
	// MillisThreshold is the epoch value above which numeric timestamps are
	// read as milliseconds.
	// Env: TTYCHAT_CODEC_MILLIS_THRESHOLD
	MillisThreshold int64 `env:"MILLIS_THRESHOLD"`
}

// Notify controls the desktop notifier. Both switches are negative so that
// the zero value keeps notifications on.
type Notify struct {
	// Disabled turns desktop notifications off.
	// Env: TTYCHAT_NOTIFY_DISABLED
	Disabled bool `env:"DISABLED"`

	// Silent turns the beep off.
	// Env: TTYCHAT_NOTIFY_SILENT
	Silent bool `env:"SILENT"`
}

// Log controls the log file.
type Log struct {
	// File is the log path, relative to ConfigDir unless absolute.
	// Env: TTYCHAT_LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name.
	// Env: TTYCHAT_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (first source wins
// for non-zero fields):
//  1. Command-line flags registered with [RegisterFlags]
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// Flags holds the values bound to a cobra/pflag flag set.
type Flags struct {
	cfg     StructuredConfig
	address NetAddress
}

// RegisterFlags declares every configuration flag on fs and returns the
// holder read by [GetClientConfig] after fs has been parsed.
//
// Flags:
//
//	-s/--server       chat server address in form host[:port]
//	-u/--username     username to pre-fill
//	-k/--insecure     skip TLS certificate verification
//	--plain           line-oriented frontend
//	--config-dir      identity and profile directory
//	-c/--config       JSON config file path
//	-d/--dsn          SQLite profile store DSN
//	--dial-timeout    TCP connect timeout (e.g. "5s")
//	--handshake-timeout TLS and auth timeout
//	--tick            event loop tick (e.g. "60ms")
//	--no-notify       disable desktop notifications
//	--silent          disable the notification beep
//	--log-file        log file path
//	--log-level       zerolog level
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.VarP(&f.address, "server", "s", "Chat server address host[:port]")
	fs.StringVarP(&f.cfg.App.Username, "username", "u", "", "Username")
	fs.BoolVarP(&f.cfg.Adapter.Insecure, "insecure", "k", false, "Skip TLS certificate verification")
	fs.BoolVar(&f.cfg.App.Plain, "plain", false, "Use the line-oriented frontend")
	fs.StringVar(&f.cfg.App.ConfigDir, "config-dir", "", "Identity and profile directory")
	fs.StringVarP(&f.cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVarP(&f.cfg.Storage.DB.DSN, "dsn", "d", "", "SQLite profile store DSN")
	fs.DurationVar(&f.cfg.Adapter.DialTimeout, "dial-timeout", 0, "TCP connect timeout (e.g. 5s)")
	fs.DurationVar(&f.cfg.Adapter.HandshakeTimeout, "handshake-timeout", 0, "TLS and authentication timeout (e.g. 10s)")
	fs.DurationVar(&f.cfg.Workers.TickInterval, "tick", 0, "Event loop tick (e.g. 60ms)")
	fs.BoolVar(&f.cfg.Notify.Disabled, "no-notify", false, "Disable desktop notifications")
	fs.BoolVar(&f.cfg.Notify.Silent, "silent", false, "Disable the notification beep")
	fs.StringVar(&f.cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&f.cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")

	return f
}

// config returns the parsed flag values as a [StructuredConfig].
func (f *Flags) config() *StructuredConfig {
	if f == nil {
		return &StructuredConfig{}
	}
	cfg := f.cfg
	cfg.Adapter.ServerAddress = f.address.String()
	return &cfg
}
