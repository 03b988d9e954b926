// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		username string
		want     string
	}{
		{username: "alice", want: "identity_alice.key"},
		{username: "bob.smith@host", want: "identity_bob_smith_host.key"},
		{username: "../etc/passwd", want: "identity____etc_passwd.key"},
		{username: "Ünïcode9", want: "identity_Ünïcode9.key"},
		{username: "", want: "identity.key"},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.username))
		})
	}
}

func TestKeyStore_Path_AdoptsLegacyKey(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, "identity.key")
	seed := bytes.Repeat([]byte{3}, SeedSize)
	require.NoError(t, os.WriteFile(legacy, seed, 0o600))

	s := NewKeyStore(dir)
	path := s.Path("carol")

	assert.Equal(t, filepath.Join(dir, "identity_carol.key"), path)
	assert.NoFileExists(t, legacy)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, seed, raw)
}

func TestKeyStore_Path_KeepsExistingUserKey(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, "identity.key")
	user := filepath.Join(dir, "identity_dave.key")
	require.NoError(t, os.WriteFile(legacy, bytes.Repeat([]byte{1}, SeedSize), 0o600))
	require.NoError(t, os.WriteFile(user, bytes.Repeat([]byte{2}, SeedSize), 0o600))

	NewKeyStore(dir).Path("dave")

	assert.FileExists(t, legacy)
	raw, err := os.ReadFile(user)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{2}, SeedSize), raw)
}

func TestKeyStore_ImportThenLoad(t *testing.T) {
	s := NewKeyStore(t.TempDir())
	seed := bytes.Repeat([]byte{9}, SeedSize)
	expected, err := NewIdentity(seed)
	require.NoError(t, err)

	// an existing generated key is overwritten
	_, _, err = s.Load("erin")
	require.NoError(t, err)

	require.NoError(t, s.Import("erin", "  "+base64.StdEncoding.EncodeToString(seed)+"\n"))

	id, isNew, err := s.Load("erin")
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, expected.PublicKeyBase64(), id.PublicKeyBase64())

	info, err := os.Stat(s.Path("erin"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestKeyStore_ImportErrors(t *testing.T) {
	s := NewKeyStore(t.TempDir())

	assert.ErrorIs(t, s.Import("frank", "%%%"), ErrInvalidKeyFormat)
	assert.ErrorIs(t, s.Import("frank", base64.StdEncoding.EncodeToString(make([]byte, 31))), ErrInvalidKeyLength)
	assert.NoFileExists(t, s.Path("frank"))
}

func TestKeyStore_DeleteIsIdempotent(t *testing.T) {
	s := NewKeyStore(t.TempDir())
	_, isNew, err := s.Load("gina")
	require.NoError(t, err)
	require.True(t, isNew)

	path, deleted, err := s.Delete("gina")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NoFileExists(t, path)

	_, deleted, err = s.Delete("gina")
	require.NoError(t, err)
	assert.False(t, deleted)

	// a new identity is generated after reset
	_, isNew, err = s.Load("gina")
	require.NoError(t, err)
	assert.True(t, isNew)
}
