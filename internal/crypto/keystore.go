// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const legacyKeyFile = "identity.key"

// KeyStore maps usernames to identity files inside one directory.
type KeyStore struct {
	dir string
}

// NewKeyStore returns a store rooted at dir. The directory is created on
// first write.
func NewKeyStore(dir string) *KeyStore {
	return &KeyStore{dir: dir}
}

// Dir returns the directory holding the identity files.
func (s *KeyStore) Dir() string {
	return s.dir
}

// FileName returns "identity_<name>.key" where every rune that is not a
// letter or digit becomes '_'. An empty name maps to "identity.key".
func FileName(username string) string {
	safe := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
		return '_'
	}, username)

	if safe == "" {
		return legacyKeyFile
	}
	return "identity_" + safe + ".key"
}

// Path returns the identity file for username.
//
// When the user file is missing and a legacy shared "identity.key" exists,
// the legacy file is renamed to the user path so it is adopted by the first
// user that asks for it. Rename failures are ignored.
func (s *KeyStore) Path(username string) string {
	name := FileName(username)
	path := filepath.Join(s.dir, name)
	if name == legacyKeyFile {
		return path
	}

	legacy := filepath.Join(s.dir, legacyKeyFile)
	if !exists(path) && exists(legacy) {
		_ = os.Rename(legacy, path)
	}
	return path
}

// Load returns the identity for username, generating and persisting one
// when none exists.
func (s *KeyStore) Load(username string) (*Identity, bool, error) {
	return LoadOrGenerate(s.Path(username))
}

// Import overwrites the identity of username with the base64 seed. Leading
// and trailing whitespace is ignored.
func (s *KeyStore) Import(username, seedB64 string) error {
	seed, err := base64.StdEncoding.DecodeString(strings.TrimSpace(seedB64))
	if err != nil {
		return ErrInvalidKeyFormat
	}
	if len(seed) != SeedSize {
		return ErrInvalidKeyLength
	}
	return writeSeed(s.Path(username), seed)
}

// Delete removes the identity file of username. It returns the path and
// whether a file was actually removed; a missing file is not an error.
func (s *KeyStore) Delete(username string) (path string, deleted bool, err error) {
	path = s.Path(username)
	err = os.Remove(path)
	switch {
	case err == nil:
		return path, true, nil
	case errors.Is(err, fs.ErrNotExist):
		return path, false, nil
	default:
		return path, false, fmt.Errorf("delete identity: %w", err)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
