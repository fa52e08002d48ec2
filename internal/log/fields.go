// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldService   = "service"
	FieldVersion   = "version"
	FieldRunID     = "run_id"
	FieldCommand   = "command"
	FieldComponent = "component"
	FieldEvent     = "event"

	// Channel fields
	FieldChannel  = "channel"
	FieldTvgID    = "tvg_id"
	FieldOldTvgID = "old_tvg_id"
	FieldCallSign = "call_sign"
	FieldScore    = "score"
	FieldMethod   = "method"

	// Source fields
	FieldURL    = "url"
	FieldSource = "source"
	FieldSite   = "site"
	FieldBytes  = "bytes"

	// Path fields
	FieldPath         = "path"
	FieldPlaylistPath = "playlist_path"
	FieldConfigPath   = "config_path"
)
