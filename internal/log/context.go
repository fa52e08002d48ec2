// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

// Package log provides structured logging utilities.
package log

import (
	"context"

	"github.com/rs/zerolog"
)

type runKey struct{}

// run identifies one invocation of a pipeline command.
type run struct {
	id      string
	command string
}

// ContextWithRun tags ctx with a run id and the command it belongs to ("clean",
// "relevancy"). Loggers derived through WithContext carry both.
func ContextWithRun(ctx context.Context, id, command string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, runKey{}, run{id: id, command: command})
}

// RunFromContext returns the run id and command stored by ContextWithRun.
func RunFromContext(ctx context.Context) (id, command string) {
	if ctx == nil {
		return "", ""
	}
	r, _ := ctx.Value(runKey{}).(run)
	return r.id, r.command
}

// WithContext adds the run fields of ctx to logger.
func WithContext(ctx context.Context, logger zerolog.Logger) zerolog.Logger {
	id, command := RunFromContext(ctx)
	if id == "" && command == "" {
		return logger
	}
	lc := logger.With()
	if id != "" {
		lc = lc.Str(FieldRunID, id)
	}
	if command != "" {
		lc = lc.Str(FieldCommand, command)
	}
	return lc.Logger()
}

// WithComponentFromContext returns the component logger enriched with the run fields of ctx.
func WithComponentFromContext(ctx context.Context, component string) zerolog.Logger {
	return WithContext(ctx, WithComponent(component))
}

// FromContext returns the logger attached to ctx with zerolog's WithContext, or the
// base logger when none is attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
			return l
		}
	}
	b := WithContext(ctx, Base())
	return &b
}
