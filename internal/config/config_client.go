// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Built-in defaults.
const (
	DefaultDirName         = "ttychat"
	DefaultProfilesFile    = "profiles.json"
	DefaultLogFile         = "ttychat.log"
	DefaultLogLevel        = "info"
	DefaultTickInterval    = 60 * time.Millisecond
	DefaultMillisThreshold = int64(10_000_000_000)
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// ConfigDir is the absolute directory holding identities and profiles.
	ConfigDir string
	// Username pre-fills the connect form.
	Username string
	// Plain selects the line-oriented frontend.
	Plain bool
}

// ClientAdapter holds the session connector settings.
type ClientAdapter struct {
	// ServerAddress is the normalized "host:port" or empty.
	ServerAddress    string
	Insecure         bool
	DialTimeout      time.Duration
	HandshakeTimeout time.Duration
}

// ClientDB contains SQLite connection settings.
type ClientDB struct {
	// DSN enables the SQLite profile store when non-empty.
	DSN string
}

// ClientStorage groups profile store settings.
type ClientStorage struct {
	DB ClientDB
	// ProfilesFile is the absolute JSON record path.
	ProfilesFile string
}

// ClientWorkers contains event loop settings.
type ClientWorkers struct {
	TickInterval time.Duration
}

// ClientCodec contains decoding settings.
type ClientCodec struct {
	MillisThreshold int64
}

// ClientNotify contains notifier settings.
type ClientNotify struct {
	Enabled bool
	Sound   bool
}

// ClientLog contains logger settings.
type ClientLog struct {
	// File is the absolute log path.
	File  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Codec   ClientCodec
	Notify  ClientNotify
	Log     ClientLog
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration. Relative file paths are resolved against the
// config directory.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	serverAddress := ""
	if cfg.Adapter.ServerAddress != "" {
		var addr NetAddress
		if err := addr.Set(cfg.Adapter.ServerAddress); err != nil {
			return nil, fmt.Errorf("%w: server address: %w", ErrInvalidAdapterConfigs, err)
		}
		serverAddress = addr.String()
	}

	dir := cfg.App.ConfigDir
	clientCfg := &ClientConfig{
		App: ClientApp{
			ConfigDir: dir,
			Username:  cfg.App.Username,
			Plain:     cfg.App.Plain,
		},
		Adapter: ClientAdapter{
			ServerAddress:    serverAddress,
			Insecure:         cfg.Adapter.Insecure,
			DialTimeout:      cfg.Adapter.DialTimeout,
			HandshakeTimeout: cfg.Adapter.HandshakeTimeout,
		},
		Storage: ClientStorage{
			DB:           ClientDB{DSN: cfg.Storage.DB.DSN},
			ProfilesFile: resolve(dir, cfg.Storage.ProfilesFile),
		},
		Workers: ClientWorkers{TickInterval: cfg.Workers.TickInterval},
		Codec:   ClientCodec{MillisThreshold: cfg.Codec.MillisThreshold},
		Notify: ClientNotify{
			Enabled: !cfg.Notify.Disabled,
			Sound:   !cfg.Notify.Silent,
		},
		Log: ClientLog{
			File:  resolve(dir, cfg.Log.File),
			Level: cfg.Log.Level,
		},
	}

	return clientCfg, clientCfg.validate()
}

// DefaultConfigDir returns <user config dir>/ttychat, or ./ttychat when the
// platform has no config directory.
func DefaultConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		base = "."
	}
	return filepath.Join(base, DefaultDirName)
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{ConfigDir: DefaultConfigDir()},
		Storage: Storage{ProfilesFile: DefaultProfilesFile},
		Workers: Workers{TickInterval: DefaultTickInterval},
		Codec:   Codec{MillisThreshold: DefaultMillisThreshold},
		Log:     Log{File: DefaultLogFile, Level: DefaultLogLevel},
	}
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
