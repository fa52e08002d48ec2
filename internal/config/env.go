// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arah91-bit/my-epg-automation/internal/log"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "EPGCLEAN_"

// Environment keys.
const (
	EnvSourceList        = EnvPrefix + "SOURCE_LIST"
	EnvSources           = EnvPrefix + "SOURCES"
	EnvOutput            = EnvPrefix + "OUTPUT"
	EnvMatchThreshold    = EnvPrefix + "MATCH_THRESHOLD"
	EnvFFprobeBin        = EnvPrefix + "FFPROBE_BIN"
	EnvFFmpegBin         = EnvPrefix + "FFMPEG_BIN"
	EnvProbeTimeout      = EnvPrefix + "PROBE_TIMEOUT"
	EnvProbeWorkers      = EnvPrefix + "PROBE_WORKERS"
	EnvProbeRate         = EnvPrefix + "PROBE_RATE"
	EnvDownloadWorkers   = EnvPrefix + "DOWNLOAD_WORKERS"
	EnvDownloadTimeout   = EnvPrefix + "DOWNLOAD_TIMEOUT"
	EnvDownloadRetries   = EnvPrefix + "DOWNLOAD_RETRIES"
	EnvRelevancyPlaylist = EnvPrefix + "RELEVANCY_PLAYLIST"
	EnvSitesFile         = EnvPrefix + "SITES_FILE"
	EnvSitesDir          = EnvPrefix + "SITES_DIR"
	EnvRelevancyWorkers  = EnvPrefix + "RELEVANCY_WORKERS"
	EnvMinMatches        = EnvPrefix + "MIN_MATCHES"
	EnvLogLevel          = EnvPrefix + "LOG_LEVEL"
	EnvLogFormat         = EnvPrefix + "LOG_FORMAT"
	EnvLogFile           = EnvPrefix + "LOG_FILE"
	EnvMetricsFile       = EnvPrefix + "METRICS_FILE"

	// EnvLogLevelFallback is honoured when EnvLogLevel is unset.
	EnvLogLevelFallback = "LOG_LEVEL"
)

// ParseString reads a string from environment variable or returns default value.
// It logs the source (environment or default) for observability.
func ParseString(key, defaultValue string) string {
	return parseStringWithLogger(log.WithComponent("config"), key, defaultValue)
}

func parseStringWithLogger(logger zerolog.Logger, key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		logger.Debug().
			Str("key", key).
			Str("default", defaultValue).
			Str("source", "default").
			Msg("using default value")
		return defaultValue
	}
	logger.Debug().
		Str("key", key).
		Str("value", value).
		Str("source", "environment").
		Msg("using environment variable")
	return value
}

// ParseList reads a comma-separated list. Blank elements are dropped; an unset or empty
// variable yields defaultValue.
func ParseList(key string, defaultValue []string) []string {
	raw := ParseString(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseEnv looks up key and converts it with parse. Empty, unset and invalid values
// yield defaultValue; invalid values are logged as warnings.
func parseEnv[T any](key string, defaultValue T, kind string, parse func(string) (T, error)) T {
	logger := log.WithComponent("config")
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		logger.Debug().
			Str("key", key).
			Interface("default", defaultValue).
			Str("source", "default").
			Msg("using default value")
		return defaultValue
	}
	parsed, err := parse(strings.TrimSpace(v))
	if err != nil {
		logger.Warn().
			Str("key", key).
			Str("value", v).
			Interface("default", defaultValue).
			Msgf("invalid %s in environment variable, using default", kind)
		return defaultValue
	}
	logger.Debug().
		Str("key", key).
		Interface("value", parsed).
		Str("source", "environment").
		Msg("using environment variable")
	return parsed
}

// ParseInt reads an integer from environment variable or returns default value.
func ParseInt(key string, defaultValue int) int {
	return parseEnv(key, defaultValue, "integer", strconv.Atoi)
}

// ParseDuration reads a duration in Go syntax ("15s") or returns default value.
func ParseDuration(key string, defaultValue time.Duration) time.Duration {
	return parseEnv(key, defaultValue, "duration", time.ParseDuration)
}

// ParseFloat reads a float64 from environment variable or returns default value.
func ParseFloat(key string, defaultValue float64) float64 {
	return parseEnv(key, defaultValue, "float", func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// ParseBool reads a boolean ("true", "false", "1", "0", "yes", "no") or returns default value.
func ParseBool(key string, defaultValue bool) bool {
	return parseEnv(key, defaultValue, "boolean", func(s string) (bool, error) {
		switch strings.ToLower(s) {
		case "true", "1", "yes":
			return true, nil
		case "false", "0", "no":
			return false, nil
		}
		return false, strconv.ErrSyntax
	})
}
