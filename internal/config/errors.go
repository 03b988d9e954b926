// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when configuration groups are incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid connector settings
	// (for example, an unparsable server address or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid profile store settings
	// (for example, no backend or an in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty config directory).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive tick interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidCodecConfigs indicates a non-positive millisecond threshold.
	ErrInvalidCodecConfigs = errors.New("invalid codec configuration")
)
