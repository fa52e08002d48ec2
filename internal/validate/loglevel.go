// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package validate

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// LogLevel is a log level name accepted by the configuration and --log-level.
type LogLevel string

// levels maps accepted names to zerolog levels, most verbose first.
var levels = []struct {
	name  LogLevel
	level zerolog.Level
}{
	{"trace", zerolog.TraceLevel},
	{"debug", zerolog.DebugLevel},
	{"info", zerolog.InfoLevel},
	{"warn", zerolog.WarnLevel},
	{"error", zerolog.ErrorLevel},
}

// LogLevels lists the accepted log level names.
var LogLevels = func() []string {
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = string(l.name)
	}
	return names
}()

// ErrInvalidLogLevel is wrapped by ParseLogLevel for unknown names.
var ErrInvalidLogLevel = &Error{
	Field:   "logLevel",
	Message: "invalid log level (must be one of " + strings.Join(LogLevels, ", ") + ")",
}

// ParseLogLevel parses a case-insensitive log level name.
func ParseLogLevel(s string) (LogLevel, error) {
	name := LogLevel(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := name.lookup(); !ok {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidLogLevel)
	}
	return name, nil
}

// Zerolog returns the matching zerolog level, or zerolog.InfoLevel for unknown names.
func (l LogLevel) Zerolog() zerolog.Level {
	if lvl, ok := l.lookup(); ok {
		return lvl
	}
	return zerolog.InfoLevel
}

func (l LogLevel) lookup() (zerolog.Level, bool) {
	for _, candidate := range levels {
		if candidate.name == l {
			return candidate.level, true
		}
	}
	return zerolog.NoLevel, false
}
