// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

package jobs

import "errors"

var (
	// ErrNoSources is returned when neither the source list nor the config names a playlist.
	ErrNoSources = errors.New("no source playlists configured")
	// ErrSourcesUnavailable is returned when every source playlist failed to download.
	ErrSourcesUnavailable = errors.New("no source playlist could be downloaded")
	// ErrNoLiveChannels is returned when no channel passes the liveness probe.
	// Nothing is written in that case.
	ErrNoLiveChannels = errors.New("no working streams found")
	// ErrOutputLocked is returned when another run holds the output lock.
	ErrOutputLocked = errors.New("output is locked by another run")
)
