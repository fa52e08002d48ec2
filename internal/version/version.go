// Copyright (c) 2025 arah91-bit
// SPDX-License-Identifier: MIT
// Part of my-epg-automation (epgclean).

// Package version carries build metadata injected through -ldflags.
package version

import "fmt"

var (
	// Version is the release version, set by the build system (ldflags).
	Version = "dev"

	// Commit is the git short hash of the build.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)

// String renders the build metadata for the version command and the user agent.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}

// UserAgent returns the HTTP user agent used for playlist downloads.
func UserAgent() string {
	return "epgclean/" + Version
}
