// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	require.NotEmpty(t, line, "expected a log line")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	return entry
}

func TestConfigure_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "info", Output: &buf, Service: "svc", Version: "v1"})
	t.Cleanup(func() { Configure(Config{Output: os.Stderr}) })

	l := WithComponent("jobs")
	l.Info().Str(FieldEvent, "clean.start").Msg("starting")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "svc", entry[FieldService])
	assert.Equal(t, "v1", entry[FieldVersion])
	assert.Equal(t, "jobs", entry[FieldComponent])
	assert.Equal(t, "clean.start", entry[FieldEvent])
}

func TestConfigure_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "warn", Output: &buf})
	t.Cleanup(func() { Configure(Config{Output: os.Stderr}) })

	l := Base()
	l.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigure_ConsoleFormatIsNotJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "info", Format: FormatConsole, Output: &buf})
	t.Cleanup(func() { Configure(Config{Output: os.Stderr}) })

	l := Base()
	l.Info().Msg("hello console")
	out := buf.String()
	assert.Contains(t, out, "hello console")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"))
}

func TestConfigure_AutoFormatOnBufferUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "info", Format: FormatAuto, Output: &buf})
	t.Cleanup(func() { Configure(Config{Output: os.Stderr}) })

	l := Base()
	l.Info().Msg("auto")
	decodeLine(t, &buf)
}

func TestConfigure_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "epgclean.log")
	var buf bytes.Buffer
	Configure(Config{Level: "info", Output: &buf, File: path})
	t.Cleanup(func() { Configure(Config{Output: os.Stderr}) })

	l := Base()
	l.Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Contains(t, buf.String(), "to file")
}

func TestContextWithRun(t *testing.T) {
	tests := []struct {
		name        string
		ctx         context.Context
		id, command string
	}{
		{name: "nil context", ctx: nil, id: "run-123", command: "clean"},
		{name: "background context", ctx: context.Background(), id: "run-456", command: "relevancy"},
		{name: "empty values", ctx: context.Background()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, command := RunFromContext(ContextWithRun(tt.ctx, tt.id, tt.command))
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.command, command)
		})
	}
}

func TestRunFromContext_Missing(t *testing.T) {
	id, command := RunFromContext(nil) //nolint:staticcheck // nil context is part of the contract
	assert.Empty(t, id)
	assert.Empty(t, command)
	id, _ = RunFromContext(context.Background())
	assert.Empty(t, id)
}

func TestWithComponentFromContext_AddsRunFields(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf})
	t.Cleanup(func() { Configure(Config{Output: os.Stderr}) })

	ctx := ContextWithRun(context.Background(), "run-1", "clean")
	l := WithComponentFromContext(ctx, "match")
	l.Debug().Msg("x")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "run-1", entry[FieldRunID])
	assert.Equal(t, "clean", entry[FieldCommand])
	assert.Equal(t, "match", entry[FieldComponent])
}

func TestFromContext_AddsRunFieldsToBase(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf})
	t.Cleanup(func() { Configure(Config{Output: os.Stderr}) })

	l := FromContext(ContextWithRun(context.Background(), "run-2", ""))
	l.Info().Msg("x")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "run-2", entry[FieldRunID])
	assert.NotContains(t, entry, FieldCommand)
}

func TestFromContext_FallsBackToBase(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	l = FromContext(nil) //nolint:staticcheck // nil context is part of the contract
	require.NotNil(t, l)
}
