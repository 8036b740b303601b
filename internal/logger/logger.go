// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for go-sync-hub. Entries are JSON on stdout
// with a "role" field, a timestamp and the calling function under "func".
// Request handlers take their logger from the request context, which the
// trace-ID middleware enriches with a trace_id field.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the process logger writing JSON to stdout. The global
// level starts at debug until SetLevel applies the configured one.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(w).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// SetLevel applies a zerolog level name globally. An empty name keeps the
// current level.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("unknown log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)

	return nil
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies l so fields can be added without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// ForUser tags every entry with the hub user it concerns.
func (l *Logger) ForUser(username string) *Logger {
	return &Logger{l.With().Str("username", username).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's default
// context logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
