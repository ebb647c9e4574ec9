// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

// Package logger provides a thin wrapper around zerolog.Logger used
// throughout geovalid.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Validation verdicts carry no structured failure detail; the diagnostic
// trail lives entirely in these logs, so every validator receives a *Logger
// at construction.
package logger

import (
	"context"
	"os"
	"runtime"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding zerolog.Logger
// exposes the full zerolog API while allowing helper methods without
// modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a production-ready *Logger for the given role label
// (e.g. "validator", "cli").
//
// The logger is configured with:
//   - a "role" field set to role, useful for filtering log output;
//   - a "ts" timestamp on every entry;
//   - a "func" caller field recording the fully-qualified function name.
//
// Output is written to os.Stdout in JSON format.
func NewLogger(role string) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output. Intended for tests
// and for embedding the engine where logging is unwanted.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver. The child can be enriched with additional context fields
// without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// NewRunLogger returns a child logger tagged with a fresh "run_id" field and
// the generated id. One run id spans all levels of a single validation
// invocation, so the log lines of concurrent validations can be told apart.
func (l *Logger) NewRunLogger() (*Logger, string) {
	runID := uuid.NewString()
	return &Logger{l.With().Str("run_id", runID).Logger()}, runID
}

// WithContext stores the logger in ctx using zerolog's context mechanism.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx and returns it as a
// *Logger. If no logger has been attached, zerolog returns its global
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
