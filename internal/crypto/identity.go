// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto manages the client's ed25519 identity: generation,
// persistence as a raw seed file, import of a base64 seed and signing of
// server challenges.
package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/crypto/ssh"

	"github.com/MKhiriev/go-tty-chat/models"
)

var _ models.Signer = (*Identity)(nil)

// SeedSize is the length of a persisted identity file.
const SeedSize = ed25519.SeedSize

// Identity is an ed25519 keypair derived from a 32-byte seed. It is
// read-only after creation and safe for concurrent use.
type Identity struct {
	private ed25519.PrivateKey
	public  ed25519.PublicKey
}

// NewIdentity derives the keypair from seed.
func NewIdentity(seed []byte) (*Identity, error) {
	if len(seed) != SeedSize {
		return nil, ErrInvalidKeyLength
	}
	private := ed25519.NewKeyFromSeed(seed)
	return &Identity{
		private: private,
		public:  private.Public().(ed25519.PublicKey),
	}, nil
}

// Generate creates a fresh identity from the OS CSPRNG.
func Generate() (*Identity, error) {
	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return NewIdentity(seed)
}

// LoadOrGenerate reads the seed at path. When the file does not exist a new
// identity is generated, written with mode 0600 and isNew is true. A file of
// the wrong size yields [ErrKeyCorrupt]; it is never overwritten.
func LoadOrGenerate(path string) (id *Identity, isNew bool, err error) {
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(raw) != SeedSize {
			return nil, false, ErrKeyCorrupt
		}
		id, err = NewIdentity(raw)
		return id, false, err
	case !errors.Is(err, fs.ErrNotExist):
		return nil, false, fmt.Errorf("read identity: %w", err)
	}

	id, err = Generate()
	if err != nil {
		return nil, false, err
	}
	if err = writeSeed(path, id.Seed()); err != nil {
		return nil, false, err
	}
	return id, true, nil
}

// writeSeed stores seed at path with owner-only permissions, creating the
// parent directory if needed. An existing file is replaced.
func writeSeed(path string, seed []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create key directory: %w", err)
	}
	if err := os.WriteFile(path, seed, 0o600); err != nil {
		return fmt.Errorf("write identity: %w", err)
	}
	// WriteFile keeps the mode of a file that already existed.
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("restrict identity permissions: %w", err)
	}
	return nil
}

// Seed returns a copy of the 32-byte private seed.
func (i *Identity) Seed() []byte {
	return append([]byte(nil), i.private.Seed()...)
}

// Sign decodes nonceB64, signs the raw bytes and returns the base64
// signature. ed25519 signatures are deterministic.
func (i *Identity) Sign(nonceB64 string) (string, error) {
	nonce, err := base64.StdEncoding.DecodeString(nonceB64)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return base64.StdEncoding.EncodeToString(ed25519.Sign(i.private, nonce)), nil
}

// PublicKey returns the raw public key.
func (i *Identity) PublicKey() ed25519.PublicKey {
	return i.public
}

// PublicKeyBase64 returns the standard base64 encoding of the public key.
func (i *Identity) PublicKeyBase64() string {
	return base64.StdEncoding.EncodeToString(i.public)
}

// Fingerprint returns the OpenSSH SHA256 fingerprint of the public key,
// e.g. "SHA256:3q2+7w...".
func (i *Identity) Fingerprint() string {
	pub, err := ssh.NewPublicKey(i.public)
	if err != nil {
		return ""
	}
	return ssh.FingerprintSHA256(pub)
}
