// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package log

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/arah91-bit/my-epg-automation/internal/validate"
)

// Output formats accepted by Config.Format.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatAuto    = "auto"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Format  string    // json, console or auto (console when Output is a terminal)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	File    string    // optional rotating log file, written in addition to Output
	Service string    // optional service name attached to every log entry
	Version string
}

var (
	mu         sync.RWMutex
	configured bool
	base       zerolog.Logger
	fileSink   *lumberjack.Logger
)

// Configure (re)initialises the global zerolog logger. The CLI calls it once with safe
// defaults and again after the configuration file has been loaded.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()

	name := cfg.Level
	if name == "" {
		name = os.Getenv("LOG_LEVEL")
	}
	zerolog.SetGlobalLevel(validate.LogLevel(strings.ToLower(strings.TrimSpace(name))).Zerolog())
	zerolog.TimeFieldFormat = time.RFC3339

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	if useConsole(cfg.Format, writer) {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen}
	}

	if fileSink != nil {
		_ = fileSink.Close()
		fileSink = nil
	}
	if path := strings.TrimSpace(cfg.File); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			fileSink = &lumberjack.Logger{
				Filename:   path,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
			}
			// The file always receives JSON lines regardless of the console format.
			writer = zerolog.MultiLevelWriter(writer, fileSink)
		}
	}

	service := cfg.Service
	if service == "" {
		service = os.Getenv("LOG_SERVICE")
		if service == "" {
			service = "epgclean"
		}
	}

	base = zerolog.New(writer).With().
		Timestamp().
		Str(FieldService, service).
		Str(FieldVersion, cfg.Version).
		Logger()
	configured = true
}

func useConsole(format string, w io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatConsole:
		return true
	case FormatAuto:
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		fd := f.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	default:
		return false
	}
}

func logger() zerolog.Logger {
	mu.RLock()
	if configured {
		l := base
		mu.RUnlock()
		return l
	}
	mu.RUnlock()
	Configure(Config{})
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	return logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return logger().With().Str(FieldComponent, component).Logger()
}
