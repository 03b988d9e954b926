// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig] for values no source may
// set: negative durations and thresholds.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.DialTimeout < 0 || cfg.Adapter.HandshakeTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.TickInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.Codec.MillisThreshold < 0 {
		return ErrInvalidCodecConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.ConfigDir == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.ProfilesFile == "" {
		return ErrInvalidStorageConfigs
	}
	if strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return fmt.Errorf("%w: in-memory database loses profiles", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.TickInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Codec.MillisThreshold <= 0 {
		return ErrInvalidCodecConfigs
	}

	return nil
}
