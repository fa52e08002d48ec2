// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package relevancy

import "errors"

var (
	// ErrNoPlaylistIDs is returned when the playlist carries no tvg-id values.
	ErrNoPlaylistIDs = errors.New("playlist contains no tvg-id values")
	// ErrNoSites is returned when the sites list is empty.
	ErrNoSites = errors.New("sites list is empty")
	// ErrSitesDirNotFound is returned when the EPG sites directory does not exist.
	ErrSitesDirNotFound = errors.New("EPG sites directory not found")
)
