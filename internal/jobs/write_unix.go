// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

//go:build !windows

package jobs

import "github.com/google/renameio/v2"

// replaceFile writes data to a temp file beside path, fsyncs it and renames it over path.
func replaceFile(path string, data []byte) error {
	return renameio.WriteFile(path, data, playlistMode)
}
