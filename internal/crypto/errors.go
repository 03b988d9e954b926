// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrKeyCorrupt is returned when an identity file exists but does not
	// hold exactly [SeedSize] bytes.
	ErrKeyCorrupt = errors.New("key file is corrupt (expected 32 bytes)")
	// ErrDecode is returned when a nonce is not valid standard base64.
	ErrDecode = errors.New("nonce is not valid base64")
	// ErrInvalidKeyFormat is returned when an imported key is not base64.
	ErrInvalidKeyFormat = errors.New("invalid manual key format (expected Base64)")
	// ErrInvalidKeyLength is returned when an imported key does not decode
	// to [SeedSize] bytes.
	ErrInvalidKeyLength = errors.New("invalid manual key length (expected 32 bytes)")
)
