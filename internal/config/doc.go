// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

// Package config loads epgclean settings.
//
// Precedence is ENV > file > defaults. Files are parsed strictly (unknown keys are
// errors) as YAML (.yaml, .yml) or TOML (.toml). Environment overrides use the
// EPGCLEAN_ prefix. The final AppConfig is validated before it is returned.
package config
