// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"TTYCHAT_CONFIG": "/path/to/config.json",

		"TTYCHAT_APP_CONFIG_DIR": "/home/u/.config/ttychat",
		"TTYCHAT_APP_USERNAME":   "alice",
		"TTYCHAT_APP_PLAIN":      "true",

		"TTYCHAT_ADAPTER_SERVER_ADDRESS":    "chat.example.org:7443",
		"TTYCHAT_ADAPTER_INSECURE":          "true",
		"TTYCHAT_ADAPTER_DIAL_TIMEOUT":      "5s",
		"TTYCHAT_ADAPTER_HANDSHAKE_TIMEOUT": "10s",

		"TTYCHAT_STORAGE_DB_DSN":        "file:profiles.db",
		"TTYCHAT_STORAGE_PROFILES_FILE": "recent.json",

		"TTYCHAT_WORKERS_TICK_INTERVAL":  "100ms",
		"TTYCHAT_CODEC_MILLIS_THRESHOLD": "99",
		"TTYCHAT_NOTIFY_DISABLED":        "true",
		"TTYCHAT_NOTIFY_SILENT":          "true",
		"TTYCHAT_LOG_FILE":               "debug.log",
		"TTYCHAT_LOG_LEVEL":              "debug",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/home/u/.config/ttychat", cfg.App.ConfigDir)
	assert.Equal(t, "alice", cfg.App.Username)
	assert.True(t, cfg.App.Plain)

	assert.Equal(t, "chat.example.org:7443", cfg.Adapter.ServerAddress)
	assert.True(t, cfg.Adapter.Insecure)
	assert.Equal(t, 5*time.Second, cfg.Adapter.DialTimeout)
	assert.Equal(t, 10*time.Second, cfg.Adapter.HandshakeTimeout)

	assert.Equal(t, "file:profiles.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "recent.json", cfg.Storage.ProfilesFile)

	assert.Equal(t, 100*time.Millisecond, cfg.Workers.TickInterval)
	assert.Equal(t, int64(99), cfg.Codec.MillisThreshold)
	assert.True(t, cfg.Notify.Disabled)
	assert.True(t, cfg.Notify.Silent)
	assert.Equal(t, "debug.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_UnprefixedIgnored(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_USERNAME": "bob",
		"CONFIG":       "/ignored.json",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.App.Username)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"TTYCHAT_WORKERS_TICK_INTERVAL": "fast",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{
		"TTYCHAT_ADAPTER_INSECURE": "maybe",
	})

	assert.Error(t, parseEnv(&StructuredConfig{}))
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars blanks every variable the config reads so the host
// environment cannot leak into a test. Empty values are treated as unset.
func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"TTYCHAT_CONFIG",
		"TTYCHAT_APP_CONFIG_DIR",
		"TTYCHAT_APP_USERNAME",
		"TTYCHAT_APP_PLAIN",
		"TTYCHAT_ADAPTER_SERVER_ADDRESS",
		"TTYCHAT_ADAPTER_INSECURE",
		"TTYCHAT_ADAPTER_DIAL_TIMEOUT",
		"TTYCHAT_ADAPTER_HANDSHAKE_TIMEOUT",
		"TTYCHAT_STORAGE_DB_DSN",
		"TTYCHAT_STORAGE_PROFILES_FILE",
		"TTYCHAT_WORKERS_TICK_INTERVAL",
		"TTYCHAT_CODEC_MILLIS_THRESHOLD",
		"TTYCHAT_NOTIFY_DISABLED",
		"TTYCHAT_NOTIFY_SILENT",
		"TTYCHAT_LOG_FILE",
		"TTYCHAT_LOG_LEVEL",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}
