// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lastEntry closes the logger file and decodes its last line.
func lastEntry(t *testing.T, path string, closer io.Closer) map[string]any {
	t.Helper()
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

// TestNewClientLogger_RoleField verifies that every entry carries the role label.
func TestNewClientLogger_RoleField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l, closer := NewClientLogger("test-role", path, "info")

	l.Info().Msg("hello")

	entry := lastEntry(t, path, closer)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "client.log")

	l, closer := NewClientLogger("client", path, "debug")
	require.NotNil(t, l)
	l.Debug().Str("k", "v").Msg("written")

	entry := lastEntry(t, path, closer)
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "v", entry["k"])
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestNewClientLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	l, closer := NewClientLogger("client", "", "loud")
	defer closer.Close()

	require.NotNil(t, l)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_EmptyPathDiscards(t *testing.T) {
	l, closer := NewClientLogger("client", "", "info")
	defer closer.Close()

	assert.NotPanics(t, func() { l.Info().Msg("nowhere") })
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestWithSession_AddsField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	base, closer := NewClientLogger("client", path, "info")

	base.WithSession("abc").Info().Msg("tagged")

	entry := lastEntry(t, path, closer)
	assert.Equal(t, "abc", entry["session_id"])
	assert.Equal(t, "client", entry["role"])
}
