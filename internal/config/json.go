// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		ConfigDir string `json:"config_dir"`
		Username  string `json:"username"`
		Plain     bool   `json:"plain"`
	} `json:"app,omitempty"`

	Adapter struct {
		ServerAddress    string   `json:"server_address"`
		Insecure         bool     `json:"insecure"`
		DialTimeout      Duration `json:"dial_timeout"`
		HandshakeTimeout Duration `json:"handshake_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		ProfilesFile string `json:"profiles_file"`
	} `json:"storage,omitempty"`

	Workers struct {
		TickInterval Duration `json:"tick_interval"`
	} `json:"workers,omitempty"`

	Codec struct {
		MillisThreshold int64 `json:"millis_threshold"`
	} `json:"codec,omitempty"`

	Notify struct {
		Disabled bool `json:"disabled"`
		Silent   bool `json:"silent"`
	} `json:"notify,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ConfigDir: jsonCfg.App.ConfigDir,
			Username:  jsonCfg.App.Username,
			Plain:     jsonCfg.App.Plain,
		},
		Adapter: Adapter{
			ServerAddress:    jsonCfg.Adapter.ServerAddress,
			Insecure:         jsonCfg.Adapter.Insecure,
			DialTimeout:      time.Duration(jsonCfg.Adapter.DialTimeout),
			HandshakeTimeout: time.Duration(jsonCfg.Adapter.HandshakeTimeout),
		},
		Storage: Storage{
			DB:           DB{DSN: jsonCfg.Storage.DB.DSN},
			ProfilesFile: jsonCfg.Storage.ProfilesFile,
		},
		Workers: Workers{TickInterval: time.Duration(jsonCfg.Workers.TickInterval)},
		Codec:   Codec{MillisThreshold: jsonCfg.Codec.MillisThreshold},
		Notify: Notify{
			Disabled: jsonCfg.Notify.Disabled,
			Silent:   jsonCfg.Notify.Silent,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "60ms" or "10s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
