// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors used throughout the
// go-tty-chat client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// The terminal UI owns stdout, so the client logger writes to a file.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func configureGlobals(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// NewClientLogger opens (or creates) the log file at path and returns a
// logger writing JSON lines to it. The returned closer releases the file.
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name.
//
// level is parsed with zerolog.ParseLevel; an unknown value falls back to
// Info. When the file cannot be opened the logger discards everything:
// writing to stdout would corrupt the terminal UI.
func NewClientLogger(role, path, level string) (*Logger, io.Closer) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	configureGlobals(lvl)

	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if path != "" {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o700); mkErr == nil {
			f, openErr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
			if openErr == nil {
				out, closer = f, f
			}
		}
	}

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithSession returns a child logger tagged with the session identifier.
func (l *Logger) WithSession(sessionID string) *Logger {
	return &Logger{l.With().Str("session_id", sessionID).Logger()}
}
