// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package config

import "errors"

var (
	// ErrUnknownConfigField classifies strict parse failures caused by unknown keys.
	// Use errors.Is(err, ErrUnknownConfigField) instead of string matching.
	ErrUnknownConfigField = errors.New("unknown config field")

	// ErrUnsupportedFormat is returned for config files that are neither YAML nor TOML.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalidDuration is returned when a duration value in the file cannot be parsed.
	ErrInvalidDuration = errors.New("invalid duration")
)
