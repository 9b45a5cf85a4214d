// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diag provides the development warning channel for the widget kit.
//
// Widget code is I/O-free and never fails at render time; misconfiguration
// (a spring with non-positive mass, two widgets sharing one id) is reported
// here instead. Each distinct key warns at most once per process so a
// 60 Hz render loop cannot flood the log.
package diag

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	logger = newLogger(os.Stderr)
	seen   = make(map[string]struct{})
)

func newLogger(w io.Writer) zerolog.Logger {
	console := zerolog.NewConsoleWriter()
	console.Out = w
	console.TimeFormat = time.RFC3339
	return zerolog.New(console).Level(zerolog.WarnLevel).With().Timestamp().Logger()
}

// SetOutput redirects all diagnostics, primarily for tests and for hosts
// that own the terminal (a TUI host must not write to stderr mid-frame).
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
}

// WarnOnce logs a warning the first time key is seen and is silent after.
// The key should identify the offending widget or theme role, not the
// message text, so reworded messages do not re-fire.
func WarnOnce(key, msg string, fields map[string]any) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := seen[key]; ok {
		return
	}
	seen[key] = struct{}{}
	ev := logger.Warn().Str("key", key)
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

// Reset clears the warn-once memory. Test helper.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	seen = make(map[string]struct{})
}
